package github

import "time"

// Repo is a partial GitHub repository document with fields we use
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description *string   `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Homepage    *string   `json:"homepage"`
	HasPages    bool      `json:"has_pages"`
	Archived    bool      `json:"archived"`
	Fork        bool      `json:"fork"`
	Language    *string   `json:"language"`
	Owner       User      `json:"owner"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// User is a partial GitHub user document
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	Bio       string `json:"bio"`
	Blog      string `json:"blog"`
}

// ContentEntry is one item of a contents listing
type ContentEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}
