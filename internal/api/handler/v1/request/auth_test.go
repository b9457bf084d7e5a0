package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := LoginRequest{Email: "jane@campus.edu", Password: "secret123"}
		assert.NoError(t, req.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		req := LoginRequest{Email: "not-an-email", Password: "secret123"}
		assert.Error(t, req.Validate())
	})

	t.Run("missing password", func(t *testing.T) {
		req := LoginRequest{Email: "jane@campus.edu"}
		assert.Error(t, req.Validate())
	})
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		Email:       "jane@campus.edu",
		FullName:    "Jane Doe",
		Password:    "secret123",
		PhoneNumber: "+6281234567890",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("password rules", func(t *testing.T) {
		cases := map[string]bool{
			"secret123":  true,  // letters and a digit, long enough
			"a1b2c3d4":   true,
			"12345678":   false, // no letter
			"abcdefgh":   false, // no digit
			"a1":         false, // too short
			"":           false,
		}

		for password, want := range cases {
			req := valid
			req.Password = password

			err := req.Validate()
			if want {
				assert.NoError(t, err, password)
			} else {
				assert.Error(t, err, password)
			}
		}
	})

	t.Run("phone number", func(t *testing.T) {
		req := valid
		req.PhoneNumber = "not-a-phone"
		assert.Error(t, req.Validate())

		req.PhoneNumber = "081234567890"
		assert.Error(t, req.Validate(), "leading zero is rejected")

		req.PhoneNumber = "6281234567890"
		assert.NoError(t, req.Validate())
	})

	t.Run("short full name", func(t *testing.T) {
		req := valid
		req.FullName = "J"
		assert.Error(t, req.Validate())
	})
}
