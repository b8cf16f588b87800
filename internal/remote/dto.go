package remote

import (
	"encoding/json"

	"bitbucket.org/sotavant/contacts-app/internal/models"
)

// envelope is the uniform wrapper around every server response.
type envelope struct {
	Success  bool            `json:"success"`
	Messages []string        `json:"messages"`
	Data     json.RawMessage `json:"data"`
	Status   int             `json:"status"`
}

type userRecord struct {
	ID              string  `json:"id"`
	CreatedAt       string  `json:"createdAt"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	PhoneNumber     string  `json:"phoneNumber"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

type userRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	PhoneNumber     string  `json:"phoneNumber"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

type userListData struct {
	Users []userRecord `json:"users"`
}

type imageUploadData struct {
	ImageURL string `json:"imageUrl"`
}

func (u userRecord) toContact() models.Contact {
	c := models.Contact{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
	}
	if u.ProfileImageURL != nil {
		c.PhotoURI = *u.ProfileImageURL
	}
	return c
}

func toUserRequest(c models.Contact) userRequest {
	req := userRequest{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
	}
	if c.PhotoURI != "" {
		req.ProfileImageURL = &c.PhotoURI
	}
	return req
}
