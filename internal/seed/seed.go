// Package seed provides the fixed bootstrap data set. There is no
// registration endpoint; accounts exist only through seeding.
package seed

import "github.com/taskbox/taskbox/internal/model"

// adminHash is the bcrypt digest of "password".
const adminHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// Users returns the seeded accounts.
func Users() []model.User {
	return []model.User{
		{ID: 1, Username: "admin", PasswordHash: adminHash, Email: "admin@test.com"},
	}
}

// Items returns the seeded demo items.
func Items() []model.Item {
	return []model.Item{
		{ID: 1, Title: "Learn Testing", Description: "Study automated testing", Completed: false, OwnerID: 1},
		{ID: 2, Title: "Build API", Description: "Create REST API", Completed: true, OwnerID: 1},
	}
}
