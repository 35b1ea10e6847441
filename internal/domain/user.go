package domain

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

// ParseUser istek gövdesinden kullanıcı kurar; her alanın gövdede bulunması zorunludur.
func ParseUser(data []byte) (*User, error) {
	fields, err := decodeFields(data)
	if err != nil {
		return nil, err
	}

	var u User
	if err := requireField(fields, "id", &u.ID); err != nil {
		return nil, err
	}
	if err := requireField(fields, "first_name", &u.FirstName); err != nil {
		return nil, err
	}
	if err := requireField(fields, "last_name", &u.LastName); err != nil {
		return nil, err
	}
	if err := requireField(fields, "age", &u.Age); err != nil {
		return nil, err
	}
	if err := requireField(fields, "email", &u.Email); err != nil {
		return nil, err
	}
	if err := requireField(fields, "role", &u.Role); err != nil {
		return nil, err
	}
	if err := requireField(fields, "phone", &u.Phone); err != nil {
		return nil, err
	}

	return &u, nil
}

type UserRepository interface {
	FindAll() ([]User, error)
	FindByID(id int64) (*User, error)
	Create(user *User) error
	Update(user *User) error
	Delete(id int64) error
}

type UserService interface {
	ListUsers() ([]User, error)
	GetUserByID(id int64) (*User, error)
	CreateUser(user *User) error
	ReplaceUser(id int64, user *User) error
	DeleteUser(id int64) error
}
