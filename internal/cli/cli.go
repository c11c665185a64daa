package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fakebook/internal/domain"
	"fakebook/internal/service"
)

// CLI is the interactive front end. It owns all prompting and rendering and
// hands nothing but validated primitives to the services; every workflow call
// carries the explicit session value.
type CLI struct {
	in  *bufio.Scanner
	out io.Writer

	Auth    *service.AuthService
	Friends *service.FriendsService
	Feed    *service.FeedService
	Users   *service.UsersService
}

func New(in io.Reader, out io.Writer, auth *service.AuthService, friends *service.FriendsService, feed *service.FeedService, users *service.UsersService) *CLI {
	return &CLI{
		in:      bufio.NewScanner(in),
		out:     out,
		Auth:    auth,
		Friends: friends,
		Feed:    feed,
		Users:   users,
	}
}

// Run loops between the welcome and home menus until the user quits or
// stdin closes.
func (c *CLI) Run() {
	var session *domain.Session
	for {
		if session == nil {
			done := c.welcomeMenu(&session)
			if done {
				return
			}
			continue
		}
		c.homeMenu(&session)
	}
}

func (c *CLI) welcomeMenu(session **domain.Session) (quit bool) {
	c.printf("\n========================== Welcome to FakeBook ==========================\n")
	c.printf("1. Login\n2. Sign Up\n3. Quit\n")
	choice, ok := c.promptInt("Enter your choice: ")
	if !ok {
		return true
	}
	switch choice {
	case 1:
		email, ok1 := c.prompt("Enter email: ")
		password, ok2 := c.prompt("Enter password: ")
		if !ok1 || !ok2 {
			return true
		}
		sess, err := c.Auth.Login(email, password)
		if err != nil {
			c.printf("Login failed. Please check your email and password.\n")
			return false
		}
		*session = &sess
		c.printf("Login successful! Welcome.\n")
	case 2:
		c.signUp(session)
	case 3:
		c.printf("Goodbye.\n")
		return true
	default:
		c.printf("Invalid choice. Please try again.\n")
	}
	return false
}

func (c *CLI) signUp(session **domain.Session) {
	username, ok := c.prompt("Enter new username: ")
	if !ok {
		return
	}
	email, ok := c.prompt("Enter new email: ")
	if !ok {
		return
	}
	password, ok := c.prompt("Enter new password: ")
	if !ok {
		return
	}
	location, ok := c.prompt("Enter location: ")
	if !ok {
		return
	}
	age, ok := c.promptInt("Enter age: ")
	if !ok {
		return
	}
	gender, ok := c.promptChoice("Enter gender (M/F): ", "M", "F")
	if !ok {
		return
	}
	privacy, ok := c.promptChoice("Profile privacy (P = Public, V = Private): ", "P", "V")
	if !ok {
		return
	}

	sess, err := c.Auth.SignUp(service.SignUpParams{
		Username:      username,
		Email:         email,
		Password:      password,
		Location:      location,
		Gender:        gender,
		Age:           age,
		PublicProfile: privacy == "P",
	})
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		c.printf("This email is already taken.\n")
	case err != nil:
		c.printf("Sign up failed: %v\n", err)
	default:
		*session = &sess
		c.printf("Sign up successful! You are now logged in.\n")
	}
}

func (c *CLI) homeMenu(session **domain.Session) {
	c.printf("\n============================ FakeBook Home ==============================\n")
	c.printf("1. View Home Feed\n")
	c.printf("2. View My Profile\n")
	c.printf("3. View a Profile\n")
	c.printf("4. Create Post\n")
	c.printf("5. Send Friend Request\n")
	c.printf("6. Respond to Friend Requests\n")
	c.printf("7. Remove Friend\n")
	c.printf("8. Change Privacy Setting\n")
	c.printf("9. Logout\n")
	choice, ok := c.promptInt("Enter your choice: ")
	if !ok {
		*session = nil
		return
	}

	sess := **session
	switch choice {
	case 1:
		c.showFeed(sess)
	case 2:
		c.showOwnProfile(sess)
	case 3:
		c.showProfile(sess)
	case 4:
		c.createPost(sess)
	case 5:
		c.sendRequest(sess)
	case 6:
		c.respondRequests(sess)
	case 7:
		c.removeFriend(sess)
	case 8:
		c.changePrivacy(sess)
	case 9:
		*session = nil
		c.printf("You have been logged out.\n")
	default:
		c.printf("Invalid choice. Please try again.\n")
	}
}

func (c *CLI) prompt(label string) (string, bool) {
	c.printf("%s", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *CLI) promptInt(label string) (int, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.printf("Invalid input. Please enter a number.\n")
			continue
		}
		return n, true
	}
}

// promptChoice keeps asking until the answer matches one of the options
// (case-insensitive).
func (c *CLI) promptChoice(label string, options ...string) (string, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return "", false
		}
		for _, opt := range options {
			if strings.EqualFold(raw, opt) {
				return opt, true
			}
		}
	}
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
