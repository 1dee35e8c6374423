// Command taskbox is a CLI client for the taskbox service.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "taskbox")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "taskbox")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tok string, exp time.Time) error {
	_ = os.MkdirAll(cfgDir(), 0o700)
	f, err := os.Create(tokenPath())
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenFile{AccessToken: tok, ExpiresAt: exp})
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (login required)")
	}
	return tf.AccessToken, nil
}

// ---- http helpers ----

type client struct {
	base   string
	bearer string
	http   *http.Client
}

func newClient(base, bearer string) *client {
	return &client{base: base, bearer: bearer, http: &http.Client{Timeout: 10 * time.Second}}
}

// do sends a JSON request and decodes the JSON response into out. Non-2xx
// responses are returned as errors carrying the server's error message.
func (c *client) do(method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return fmt.Errorf("%s (HTTP %d)", e.Error, resp.StatusCode)
		}
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

type itemJSON struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	OwnerID     int    `json:"ownerId"`
}

// ---- commands ----

func cmdLogin(base string, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("u", "", "username")
	pass := fs.String("p", "", "password")
	_ = fs.Parse(args)
	if *user == "" || *pass == "" {
		return errors.New("usage: taskbox login -u <user> -p <password>")
	}

	var out struct {
		Token string `json:"token"`
		User  struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"user"`
	}
	c := newClient(base, "")
	if err := c.do(http.MethodPost, "/login", map[string]string{"username": *user, "password": *pass}, &out); err != nil {
		return err
	}
	// Token lifetime is not echoed by the server; keep the file fresh for
	// slightly under the default one hour TTL.
	if err := saveToken(out.Token, time.Now().Add(55*time.Minute)); err != nil {
		return err
	}
	fmt.Printf("logged in as %s (id %d)\n", out.User.Username, out.User.ID)
	return nil
}

func cmdList(base string) error {
	tok, err := loadToken()
	if err != nil {
		return err
	}
	var items []itemJSON
	if err := newClient(base, tok).do(http.MethodGet, "/items", nil, &items); err != nil {
		return err
	}
	for _, it := range items {
		mark := " "
		if it.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %3d  %s", mark, it.ID, it.Title)
		if it.Description != "" {
			fmt.Printf("  - %s", it.Description)
		}
		fmt.Println()
	}
	return nil
}

func cmdAdd(base string, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	desc := fs.String("d", "", "description")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		return errors.New("usage: taskbox add [-d <description>] <title>")
	}
	tok, err := loadToken()
	if err != nil {
		return err
	}
	var it itemJSON
	body := map[string]string{"title": fs.Arg(0), "description": *desc}
	if err := newClient(base, tok).do(http.MethodPost, "/items", body, &it); err != nil {
		return err
	}
	fmt.Printf("created item %d\n", it.ID)
	return nil
}

func cmdDone(base string, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: taskbox done <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad id %q", args[0])
	}
	tok, err := loadToken()
	if err != nil {
		return err
	}
	var it itemJSON
	body := map[string]any{"completed": true}
	if err := newClient(base, tok).do(http.MethodPut, "/items/"+strconv.Itoa(id), body, &it); err != nil {
		return err
	}
	fmt.Printf("item %d completed\n", it.ID)
	return nil
}

func cmdRm(base string, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: taskbox rm <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad id %q", args[0])
	}
	tok, err := loadToken()
	if err != nil {
		return err
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := newClient(base, tok).do(http.MethodDelete, "/items/"+strconv.Itoa(id), nil, &out); err != nil {
		return err
	}
	fmt.Println(out.Message)
	return nil
}

func cmdHealth(base string) error {
	var out struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := newClient(base, "").do(http.MethodGet, "/health", nil, &out); err != nil {
		return err
	}
	fmt.Printf("%s at %s\n", out.Status, out.Timestamp)
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: taskbox [-addr <url>] <command> [args]

commands:
  login -u <user> -p <password>   obtain and store an access token
  list                            list your items
  add [-d <description>] <title>  create an item
  done <id>                       mark an item completed
  rm <id>                         delete an item
  health                          check server liveness`)
	os.Exit(2)
}

func main() {
	addr := flag.String("addr", "http://localhost:5000", "server base URL")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}

	cmd, args := flag.Arg(0), flag.Args()[1:]
	var err error
	switch cmd {
	case "login":
		err = cmdLogin(*addr, args)
	case "list":
		err = cmdList(*addr)
	case "add":
		err = cmdAdd(*addr, args)
	case "done":
		err = cmdDone(*addr, args)
	case "rm":
		err = cmdRm(*addr, args)
	case "health":
		err = cmdHealth(*addr)
	default:
		usage()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
