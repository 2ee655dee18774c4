package domain

// SocialLink is one entry of a user's ordered link list.
type SocialLink struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type User struct {
	ID          ID           `json:"id"`
	Email       string       `json:"email"`
	Password    string       `json:"password,omitempty"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Promo       string       `json:"promo,omitempty"`
	AvatarURL   string       `json:"avatarUrl,omitempty"`
	Description string       `json:"description,omitempty"`
	Links       []SocialLink `json:"links,omitempty"`
	Favorites   []ID         `json:"favorites,omitempty"`
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// HasFavorite reports whether projectID is in the user's favorites set.
func (u *User) HasFavorite(projectID ID) bool {
	for _, id := range u.Favorites {
		if id == projectID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so users can be handed to subscribers without
// sharing slices.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	if u.Links != nil {
		out.Links = append([]SocialLink(nil), u.Links...)
	}
	if u.Favorites != nil {
		out.Favorites = append([]ID(nil), u.Favorites...)
	}
	return &out
}

// Redacted returns a copy safe to store as the session record or return to a
// client: everything but the password.
func (u *User) Redacted() *User {
	out := u.Clone()
	out.Password = ""
	return out
}

// MergeProfile applies a profile edit onto the stored record with an explicit
// precedence order:
//
//   - ID, Email, Password: always kept from the stored record, whatever the
//     edit carries. A profile form must never change credentials.
//   - Favorites: kept from the stored record unless the edit supplies a set.
//   - Everything else: taken from the edit.
func MergeProfile(stored, updated *User) *User {
	out := updated.Clone()
	out.ID = stored.ID
	out.Email = stored.Email
	out.Password = stored.Password
	if updated.Favorites == nil {
		out.Favorites = append([]ID(nil), stored.Favorites...)
	}
	return out
}
