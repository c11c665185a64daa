package textfile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fakebook/internal/domain"
)

// Line formats, one record per line:
//
//	users:    userId#username#email#password#location#gender#age#Public|Private#epochSeconds
//	friends:  userId:friendId1,friendId2,...
//	posts:    postId#authorId#content#epochSeconds#Public|FriendsOnly
//	requests: fromUserId#toUserId#epochSeconds#status
//
// Field separators inside content are not escaped; a post whose text contains
// '#' will desynchronize on reload. That is a known limitation of the format,
// kept as-is so existing data files stay readable byte for byte.

const (
	userFieldCount    = 9
	postFieldCount    = 5
	requestFieldCount = 4
)

func DecodeUser(line string) (domain.User, error) {
	fields := strings.Split(line, "#")
	if len(fields) != userFieldCount {
		return domain.User{}, fmt.Errorf("user line has %d fields, want %d: %w", len(fields), userFieldCount, domain.ErrMalformedRecord)
	}
	age, err := strconv.Atoi(fields[6])
	if err != nil {
		return domain.User{}, fmt.Errorf("user age %q: %w", fields[6], domain.ErrMalformedRecord)
	}
	createdAt, err := strconv.ParseInt(fields[8], 10, 64)
	if err != nil {
		return domain.User{}, fmt.Errorf("user created-at %q: %w", fields[8], domain.ErrMalformedRecord)
	}
	return domain.User{
		ID:            fields[0],
		Username:      fields[1],
		Email:         fields[2],
		Password:      fields[3],
		Location:      fields[4],
		Gender:        fields[5],
		Age:           age,
		PublicProfile: fields[7] == "Public",
		CreatedAt:     time.Unix(createdAt, 0),
	}, nil
}

func EncodeUser(u *domain.User) string {
	visibility := "Private"
	if u.PublicProfile {
		visibility = "Public"
	}
	return strings.Join([]string{
		u.ID,
		u.Username,
		u.Email,
		u.Password,
		u.Location,
		u.Gender,
		strconv.Itoa(u.Age),
		visibility,
		strconv.FormatInt(u.CreatedAt.Unix(), 10),
	}, "#")
}

// DecodeFriends parses one adjacency line. Empty list entries are dropped, so
// "u1:" yields no friend IDs.
func DecodeFriends(line string) (ownerID string, friendIDs []string, err error) {
	ownerID, rest, found := strings.Cut(line, ":")
	if !found {
		return "", nil, fmt.Errorf("friends line has no separator: %w", domain.ErrMalformedRecord)
	}
	for _, id := range strings.Split(rest, ",") {
		if id != "" {
			friendIDs = append(friendIDs, id)
		}
	}
	return ownerID, friendIDs, nil
}

func EncodeFriends(u *domain.User) string {
	return u.ID + ":" + strings.Join(u.Friends, ",")
}

func DecodePost(line string) (domain.Post, error) {
	fields := strings.Split(line, "#")
	if len(fields) != postFieldCount {
		return domain.Post{}, fmt.Errorf("post line has %d fields, want %d: %w", len(fields), postFieldCount, domain.ErrMalformedRecord)
	}
	createdAt, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return domain.Post{}, fmt.Errorf("post timestamp %q: %w", fields[3], domain.ErrMalformedRecord)
	}
	return domain.Post{
		ID:        fields[0],
		AuthorID:  fields[1],
		Content:   fields[2],
		CreatedAt: time.Unix(createdAt, 0),
		Public:    fields[4] == "Public",
	}, nil
}

func EncodePost(p *domain.Post) string {
	visibility := "FriendsOnly"
	if p.Public {
		visibility = "Public"
	}
	return strings.Join([]string{
		p.ID,
		p.AuthorID,
		p.Content,
		strconv.FormatInt(p.CreatedAt.Unix(), 10),
		visibility,
	}, "#")
}

func DecodeRequest(line string) (domain.FriendRequest, error) {
	fields := strings.Split(line, "#")
	if len(fields) != requestFieldCount {
		return domain.FriendRequest{}, fmt.Errorf("request line has %d fields, want %d: %w", len(fields), requestFieldCount, domain.ErrMalformedRecord)
	}
	createdAt, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return domain.FriendRequest{}, fmt.Errorf("request timestamp %q: %w", fields[2], domain.ErrMalformedRecord)
	}
	return domain.FriendRequest{
		FromID:    fields[0],
		ToID:      fields[1],
		CreatedAt: time.Unix(createdAt, 0),
		Status:    domain.RequestStatus(fields[3]),
	}, nil
}

func EncodeRequest(r domain.FriendRequest) string {
	return strings.Join([]string{
		r.FromID,
		r.ToID,
		strconv.FormatInt(r.CreatedAt.Unix(), 10),
		string(r.Status),
	}, "#")
}
