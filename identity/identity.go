// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package identity resolves numeric user and group ids to names.
package identity

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"
	"sync"
)

var (
	// ErrUnknownUser is returned when no user exists for a uid.
	ErrUnknownUser = errors.New("unknown user")
	// ErrUnknownGroup is returned when no group exists for a gid.
	ErrUnknownGroup = errors.New("unknown group")
)

// OS resolves ids through the operating system's user and group databases.
type OS struct{}

// UserName returns the login name for uid.
func (OS) UserName(uid int) (string, error) {
	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return "", fmt.Errorf("%w: uid %d: %w", ErrUnknownUser, uid, err)
	}
	return u.Username, nil
}

// GroupName returns the group name for gid.
func (OS) GroupName(gid int) (string, error) {
	g, err := user.LookupGroupId(strconv.Itoa(gid))
	if err != nil {
		return "", fmt.Errorf("%w: gid %d: %w", ErrUnknownGroup, gid, err)
	}
	return g.Name, nil
}

// Static resolves ids from fixed maps.
type Static struct {
	Users  map[int]string
	Groups map[int]string
}

// UserName returns the mapped name for uid.
func (s Static) UserName(uid int) (string, error) {
	name, ok := s.Users[uid]
	if !ok {
		return "", fmt.Errorf("%w: uid %d", ErrUnknownUser, uid)
	}
	return name, nil
}

// GroupName returns the mapped name for gid.
func (s Static) GroupName(gid int) (string, error) {
	name, ok := s.Groups[gid]
	if !ok {
		return "", fmt.Errorf("%w: gid %d", ErrUnknownGroup, gid)
	}
	return name, nil
}

// Resolver is the lookup contract wrapped by Cached.
type Resolver interface {
	UserName(uid int) (string, error)
	GroupName(gid int) (string, error)
}

type lookup struct {
	name string
	err  error
}

// Cached memoizes a Resolver, failures included.
// It is meant to live for one snapshot, where most processes share a few ids.
type Cached struct {
	next   Resolver
	mu     sync.Mutex
	users  map[int]lookup
	groups map[int]lookup
}

// NewCached wraps next.
func NewCached(next Resolver) *Cached {
	return &Cached{
		next:   next,
		users:  make(map[int]lookup),
		groups: make(map[int]lookup),
	}
}

// UserName returns the cached or freshly resolved name for uid.
func (c *Cached) UserName(uid int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.users[uid]; ok {
		return l.name, l.err
	}
	name, err := c.next.UserName(uid)
	c.users[uid] = lookup{name: name, err: err}
	return name, err
}

// GroupName returns the cached or freshly resolved name for gid.
func (c *Cached) GroupName(gid int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.groups[gid]; ok {
		return l.name, l.err
	}
	name, err := c.next.GroupName(gid)
	c.groups[gid] = lookup{name: name, err: err}
	return name, err
}
