package drac

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// maxUserSlots is the number of user slots a DRAC exposes.
const maxUserSlots = 16

// New users are allocated in this index band; slot 1 is conventionally
// root and the upper slots are left for manual assignment.
const (
	userIndexMin = 2
	userIndexMax = 11
)

// User is one configured DRAC account.
type User struct {
	Index      int               `json:"index"`
	Attributes map[string]string `json:"attributes"`
}

func userConfig(index int, object, value string) Command {
	return Command{
		Verb: "config",
		Args: []string{"-g", "cfgUserAdmin", "-o", object, "-i", strconv.Itoa(index), value},
	}
}

// ListUsers queries all 16 user slots sequentially and returns the
// configured accounts keyed by username. Slots that fail to answer are
// skipped; the query itself already logs the failure.
func (c *Client) ListUsers(ctx context.Context) (map[string]User, error) {
	users := make(map[string]User)

	for idx := 1; idx <= maxUserSlots; idx++ {
		res, err := c.query(ctx, Command{
			Verb: "getconfig",
			Args: []string{"-g", "cfgUserAdmin", "-i", strconv.Itoa(idx)},
		})
		if err != nil {
			continue
		}

		var attrs map[string]string
		for _, line := range strings.Split(res.Stdout, "\n") {
			if !strings.HasPrefix(line, "cfg") {
				continue
			}
			key, val, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			key = strings.TrimSpace(key)
			val = strings.TrimSpace(val)

			if strings.HasPrefix(key, "cfgUserAdminUserName") {
				if val == "" {
					// Empty slot; nothing else in this block matters.
					attrs = nil
					break
				}
				attrs = make(map[string]string)
				users[val] = User{Index: idx, Attributes: attrs}
			} else if attrs != nil {
				attrs[key] = val
			}
		}
	}
	return users, nil
}

// LookupUser resolves a username to its user slot, scanning all 16 slots.
// Returns ErrUserNotFound when no slot holds the name.
func (c *Client) LookupUser(ctx context.Context, username string) (User, error) {
	users, err := c.ListUsers(ctx)
	if err != nil {
		return User{}, err
	}
	u, ok := users[username]
	if !ok {
		return User{}, fmt.Errorf("%w: %q", ErrUserNotFound, username)
	}
	return u, nil
}

func (c *Client) resolveIndex(ctx context.Context, username string, index int) (int, error) {
	if index > 0 {
		return index, nil
	}
	u, err := c.LookupUser(ctx, username)
	if err != nil {
		return 0, err
	}
	return u.Index, nil
}

// DeleteUser removes a user by blanking its username. When index is zero
// the username is resolved by scanning the user slots.
func (c *Client) DeleteUser(ctx context.Context, username string, index int) error {
	idx, err := c.resolveIndex(ctx, username, index)
	if err != nil {
		return err
	}
	return c.run(ctx, userConfig(idx, "cfgUserAdminUserName", ""))
}

// ChangePassword sets a user's password. When index is zero the username is
// resolved by scanning the user slots, which issues up to 16 queries.
func (c *Client) ChangePassword(ctx context.Context, username, password string, index int) error {
	idx, err := c.resolveIndex(ctx, username, index)
	if err != nil {
		return err
	}
	return c.run(ctx, userConfig(idx, "cfgUserAdminPassword", password))
}

// SetPermissions assigns a privilege mask, given as a comma-separated flag
// list, to a user.
func (c *Client) SetPermissions(ctx context.Context, username, permissions string, index int) error {
	mask, err := ParsePrivileges(permissions)
	if err != nil {
		return err
	}
	idx, err := c.resolveIndex(ctx, username, index)
	if err != nil {
		return err
	}
	return c.run(ctx, userConfig(idx, "cfgUserAdminPrivilege", mask.Mask()))
}

// nextFreeIndex picks the lowest unused slot in the allocation band.
func nextFreeIndex(users map[string]User) (int, error) {
	used := make(map[int]bool, len(users))
	for _, u := range users {
		used[u.Index] = true
	}
	for idx := userIndexMin; idx <= userIndexMax; idx++ {
		if !used[idx] {
			return idx, nil
		}
	}
	return 0, fmt.Errorf("no free user slot in index range %d-%d", userIndexMin, userIndexMax)
}

// CreateUser creates an account in the lowest free slot of the 2..11 band:
// set the name, assign permissions, set the password, enable the account.
// If any step fails the partially-created user is deleted again.
func (c *Client) CreateUser(ctx context.Context, username, password, permissions string) error {
	mask, err := ParsePrivileges(permissions)
	if err != nil {
		return err
	}

	users, err := c.ListUsers(ctx)
	if err != nil {
		return err
	}
	if _, ok := users[username]; ok {
		return fmt.Errorf("user %q already exists", username)
	}

	idx, err := nextFreeIndex(users)
	if err != nil {
		return err
	}

	steps := []struct {
		what string
		cmd  Command
	}{
		{"create user", userConfig(idx, "cfgUserAdminUserName", username)},
		{"set permissions", userConfig(idx, "cfgUserAdminPrivilege", mask.Mask())},
		{"set password", userConfig(idx, "cfgUserAdminPassword", password)},
		{"enable user", userConfig(idx, "cfgUserAdminEnable", "1")},
	}
	for _, step := range steps {
		if err := c.run(ctx, step.cmd); err != nil {
			log.Warn().
				Str("username", username).
				Int("index", idx).
				Str("step", step.what).
				Msg("User creation failed, rolling back")
			if rbErr := c.run(ctx, userConfig(idx, "cfgUserAdminUserName", "")); rbErr != nil {
				log.Warn().Err(rbErr).Int("index", idx).Msg("Rollback failed")
			}
			return fmt.Errorf("failed to %s for %q: %w", step.what, username, err)
		}
	}
	return nil
}
