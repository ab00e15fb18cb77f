// adminctl is a small operator CLI for the portfolio API. It logs in with
// the admin passcode, caches the bearer token in the home directory, and
// exposes the admin read/write operations most useful from a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"portfolio/client"
)

const tokenFileName = ".portfolio-admin-token"

func main() {
	baseURL := flag.String("base-url", "http://localhost:5000", "portfolio API base URL")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := client.New(*baseURL)
	if token, err := loadToken(); err == nil {
		c.SetToken(token)
	}

	var err error
	switch args[0] {
	case "login":
		err = cmdLogin(ctx, c, args[1:])
	case "me":
		err = cmdMe(ctx, c)
	case "unread":
		err = cmdUnread(ctx, c)
	case "contacts":
		err = cmdContacts(ctx, c)
	case "change-passcode":
		err = cmdChangePasscode(ctx, c, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "adminctl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: adminctl [flags] <command> [args]

Commands:
  login <passcode>            authenticate and cache the token
  me                          show the admin profile
  unread                      show the unread contact count
  contacts                    list contact messages
  change-passcode <passcode>  set a new admin passcode

Flags:
`)
	flag.PrintDefaults()
}

func cmdLogin(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: login <passcode>")
	}
	res, err := c.Login(ctx, args[0])
	if err != nil {
		return err
	}
	if err := saveToken(res.Token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	fmt.Printf("Logged in as %s (admin %d)\n", res.Admin.Name, res.Admin.ID)
	return nil
}

func cmdMe(ctx context.Context, c *client.Client) error {
	admin, err := c.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s (admin %d), created %s\n", admin.Name, admin.ID, admin.CreatedAt.Format("2006-01-02"))
	return nil
}

func cmdUnread(ctx context.Context, c *client.Client) error {
	count, err := c.UnreadCount(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d unread\n", count)
	return nil
}

func cmdContacts(ctx context.Context, c *client.Client) error {
	contacts, err := c.Contacts(ctx)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		fmt.Println("no contacts")
		return nil
	}
	for _, contact := range contacts {
		status := "read"
		if !contact.Read {
			status = "UNREAD"
		}
		fmt.Printf("#%d [%s] %s <%s> (%d replies)\n    %s\n",
			contact.ID, status, contact.Name, contact.Email,
			len(contact.Replies), firstLine(contact.Message))
	}
	return nil
}

func cmdChangePasscode(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: change-passcode <passcode>")
	}
	if err := c.ChangePasscode(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Passcode updated")
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

func tokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, tokenFileName), nil
}

func loadToken() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func saveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token+"\n"), 0o600)
}
