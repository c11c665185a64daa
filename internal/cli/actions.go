package cli

import (
	"errors"

	"fakebook/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

func (c *CLI) showFeed(sess domain.Session) {
	entries, err := c.Feed.Feed(sess)
	if err != nil {
		c.printf("Could not build your feed: %v\n", err)
		return
	}
	if len(entries) == 0 {
		c.printf("Your feed is empty.\n")
		return
	}
	c.printf("\n--- Your Home Feed (Newest First) ---\n")
	for _, e := range entries {
		c.printf("--------------------\n")
		c.printf("Post by: %s\n", e.AuthorName)
		c.printf("%s\n", e.Post.Content)
		c.printf("Posted on: %s\n", e.Post.CreatedAt.Format(timeLayout))
	}
	c.printf("--------------------\n")
}

func (c *CLI) showOwnProfile(sess domain.Session) {
	view, err := c.Users.OwnProfile(sess)
	if err != nil {
		c.printf("Could not load your profile: %v\n", err)
		return
	}
	u := view.User
	c.printf("\n--- Your Profile ---\n")
	c.printf("Username: %s (ID: %s)\n", u.Username, u.ID)
	c.printf("Email: %s\n", u.Email)
	c.printf("Location: %s\n", u.Location)
	c.printf("Age: %d  Gender: %s\n", u.Age, u.Gender)
	if u.PublicProfile {
		c.printf("Profile Status: Public\n")
	} else {
		c.printf("Profile Status: Private\n")
	}
	c.printf("\n--- Your Friends (%d) ---\n", len(view.Friends))
	for _, name := range view.Friends {
		c.printf("- %s\n", name)
	}
	c.printf("\n--- Your Posts (%d) ---\n", len(view.Posts))
	for _, p := range view.Posts {
		c.printf("  [%s] %s\n", p.ID, p.Content)
	}
	c.printf("--------------------\n")
}

func (c *CLI) showProfile(sess domain.Session) {
	username, ok := c.prompt("Enter username to view: ")
	if !ok {
		return
	}
	view, err := c.Users.Profile(sess, username)
	if errors.Is(err, domain.ErrNotFound) {
		c.printf("No user named %q.\n", username)
		return
	}
	if err != nil {
		c.printf("Could not load profile: %v\n", err)
		return
	}
	u := view.User
	c.printf("\n--- %s's Profile ---\n", u.Username)
	c.printf("Location: %s\n", u.Location)
	if !view.Full {
		c.printf("\nThis profile is private and you are not friends.\n")
		c.printf("--------------------\n")
		return
	}
	c.printf("Age: %d  Gender: %s\n", u.Age, u.Gender)
	c.printf("\n--- %s's Posts ---\n", u.Username)
	for _, p := range view.Posts {
		c.printf("  [%s] %s\n", p.ID, p.Content)
	}
	c.printf("--------------------\n")
}

func (c *CLI) createPost(sess domain.Session) {
	content, ok := c.prompt("What's on your mind? ")
	if !ok {
		return
	}
	visibility, ok := c.promptChoice("Set post visibility to (P)ublic or (F)riends Only? ", "P", "F")
	if !ok {
		return
	}
	if _, err := c.Users.CreatePost(sess, content, visibility == "P"); err != nil {
		c.printf("Could not create post: %v\n", err)
		return
	}
	c.printf("Post created successfully!\n")
}

func (c *CLI) sendRequest(sess domain.Session) {
	username, ok := c.prompt("Send a friend request to (username): ")
	if !ok {
		return
	}
	_, err := c.Friends.SendRequest(sess, username)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.printf("No user named %q.\n", username)
	case errors.Is(err, domain.ErrValidation):
		c.printf("%v\n", err)
	case err != nil:
		c.printf("Could not send request: %v\n", err)
	default:
		c.printf("Friend request sent to %s.\n", username)
	}
}

func (c *CLI) respondRequests(sess domain.Session) {
	incoming := c.Friends.Incoming(sess)
	if len(incoming) == 0 {
		c.printf("No pending friend requests.\n")
		return
	}

	var resolutions []domain.RequestResolution
	for _, in := range incoming {
		answer, ok := c.promptChoice(
			"Friend request from "+in.FromName+" ("+in.Request.CreatedAt.Format(timeLayout)+"): (A)ccept, (D)ecline or (I)gnore? ",
			"A", "D", "I")
		if !ok {
			return
		}
		decision := domain.DecisionIgnore
		switch answer {
		case "A":
			decision = domain.DecisionAccept
		case "D":
			decision = domain.DecisionDecline
		}
		resolutions = append(resolutions, domain.RequestResolution{Request: in.Request, Decision: decision})
	}

	accepted, err := c.Friends.Respond(sess, resolutions)
	if err != nil {
		c.printf("Could not process requests: %v\n", err)
		return
	}
	c.printf("Done. %d new friendship(s).\n", accepted)
}

func (c *CLI) removeFriend(sess domain.Session) {
	username, ok := c.prompt("Remove which friend (username): ")
	if !ok {
		return
	}
	err := c.Friends.Unfriend(sess, username)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.printf("No user named %q.\n", username)
	case errors.Is(err, domain.ErrFriendshipMissing):
		c.printf("You are not friends with %s.\n", username)
	case err != nil:
		c.printf("Could not remove friend: %v\n", err)
	default:
		c.printf("You are no longer friends with %s.\n", username)
	}
}

func (c *CLI) changePrivacy(sess domain.Session) {
	choice, ok := c.promptChoice("Set your profile to (P)ublic or (V) Private? ", "P", "V")
	if !ok {
		return
	}
	if err := c.Users.SetPrivacy(sess, choice == "P"); err != nil {
		c.printf("Could not change privacy: %v\n", err)
		return
	}
	if choice == "P" {
		c.printf("Your profile is now Public.\n")
	} else {
		c.printf("Your profile is now Private.\n")
	}
}
