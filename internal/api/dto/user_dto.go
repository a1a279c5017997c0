package dto

import "time"

type CreateUserDTO struct {
	Email     string  `json:"email"`
	UserName  string  `json:"userName"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Address   string  `json:"address"`
	Telephone string  `json:"telephone"`
	Password  string  `json:"password"`
	Photo     *string `json:"photo,omitempty"`
}

func (d *CreateUserDTO) Validate() []string {
	var missing []string
	if d.Email == "" {
		missing = append(missing, "email")
	}
	if d.UserName == "" {
		missing = append(missing, "userName")
	}
	if d.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if d.LastName == "" {
		missing = append(missing, "lastName")
	}
	if d.Address == "" {
		missing = append(missing, "address")
	}
	if d.Telephone == "" {
		missing = append(missing, "telephone")
	}
	if d.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return []string{missingFieldsMessage(missing)}
	}

	var msgs []string
	if !validEmail(d.Email) {
		msgs = append(msgs, "Not a valid e-mail address")
	}
	if len(d.UserName) < 8 {
		msgs = append(msgs, "The userName can not be less than 8 characters")
	}
	return msgs
}

type UpdateUserDTO struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	UserName  string  `json:"userName"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Address   string  `json:"address"`
	Telephone string  `json:"telephone"`
	Password  string  `json:"password,omitempty"`
	Photo     *string `json:"photo,omitempty"`
	Active    bool    `json:"active"`
}

func (d *UpdateUserDTO) Validate() []string {
	var missing []string
	if d.ID == 0 {
		missing = append(missing, "id")
	}
	if d.Email == "" {
		missing = append(missing, "email")
	}
	if d.UserName == "" {
		missing = append(missing, "userName")
	}
	if d.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if d.LastName == "" {
		missing = append(missing, "lastName")
	}
	if d.Address == "" {
		missing = append(missing, "address")
	}
	if d.Telephone == "" {
		missing = append(missing, "telephone")
	}
	if len(missing) > 0 {
		return []string{missingFieldsMessage(missing)}
	}

	var msgs []string
	if !validEmail(d.Email) {
		msgs = append(msgs, "Not a valid e-mail address")
	}
	if len(d.UserName) < 8 {
		msgs = append(msgs, "The userName can not be less than 8 characters")
	}
	return msgs
}

type LoginDTO struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

func (d *LoginDTO) Validate() []string {
	var missing []string
	if d.Identity == "" {
		missing = append(missing, "identity")
	}
	if d.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return []string{missingFieldsMessage(missing)}
	}
	return nil
}

// UserDTO never carries the password, hashed or otherwise.
type UserDTO struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	UserName  string    `json:"userName"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Address   string    `json:"address"`
	Telephone string    `json:"telephone"`
	Photo     *string   `json:"photo"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type LoginResponseDTO struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}
