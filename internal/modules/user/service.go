package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/georgemunganga/printa-pos/internal/resource"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var hashCost = bcrypt.DefaultCost

var Schema = resource.MustSchema(
	resource.Field{Name: "username", Rules: "required,string,max=255"},
	resource.Field{Name: "password", Rules: "required,string,min=8"},
	resource.Field{Name: "staff_id", Rules: "required,integer"},
)

var Definition = resource.Definition[User]{
	Name:       "user",
	Schema:     Schema,
	NotFound:   resource.NotFound{Status: "resource not found", StatusCode: 200},
	BeforeSave: hashPassword,
}

func NewService(repo resource.Repository[User]) resource.Service[User] {
	return resource.NewService[User](Definition, repo)
}

func NewHandler(service resource.Service[User], opts resource.Options) *resource.Handler[User] {
	return resource.NewHandler(service, opts)
}

// hashPassword replaces the submitted password with its bcrypt hash.
// An empty password stays empty.
func hashPassword(ctx context.Context, u *User) error {
	if u.Password == "" {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword(digest(u.Password), hashCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(u *User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), digest(password)) == nil
}

// digest reduces a password of any length to 64 hex bytes, under the
// 72 byte input limit of bcrypt.
func digest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}
