package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campus-auction/goapi/base/ctx"
	"github.com/campus-auction/goapi/domain"
	"github.com/campus-auction/goapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")

	tkn, err := u.SignToken(ctx, "user-1", "21052000@kiit.ac.in")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	userId, email, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, domain.UserId("user-1"), userId)
	assert.Equal(t, domain.Email("21052000@kiit.ac.in"), email)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	ctx := ctx.Background()

	tkn, err := usecase.New("secret-a").SignToken(ctx, "user-1", "21052000@kiit.ac.in")
	assert.NoError(t, err)

	_, _, err = usecase.New("secret-b").ParseToken(ctx, tkn)
	assert.Error(t, err)
}
