package github

import (
	"context"
	"fmt"
	"net/url"

	"showcase/internal/core/langs"
)

// listPageSize is the API maximum; one page covers typical accounts
const listPageSize = 100

// ListUserRepos lists the public repositories of login, most recently updated first
func (c *Client) ListUserRepos(ctx context.Context, login string) ([]Repo, error) {
	path := fmt.Sprintf("/users/%s/repos?type=all&sort=updated&per_page=%d", url.PathEscape(login), listPageSize)
	var out []Repo
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RepoLanguages fetches the language byte breakdown for a repo, in API order
func (c *Client) RepoLanguages(ctx context.Context, fullName string) (langs.Languages, error) {
	path := fmt.Sprintf("/repos/%s/languages", fullName)
	var out langs.Languages
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RepoContents lists the root directory of a repo
func (c *Client) RepoContents(ctx context.Context, fullName string) ([]ContentEntry, error) {
	path := fmt.Sprintf("/repos/%s/contents", fullName)
	var out []ContentEntry
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserByLogin fetches a user by login
func (c *Client) UserByLogin(ctx context.Context, login string) (User, error) {
	path := fmt.Sprintf("/users/%s", url.PathEscape(login))
	var out User
	if err := c.getJSON(ctx, path, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// FindFile returns the entry named name, if any
func FindFile(entries []ContentEntry, name string) (ContentEntry, bool) {
	for _, e := range entries {
		if e.Name == name && e.Type == "file" {
			return e, true
		}
	}
	return ContentEntry{}, false
}
