package types

import (
	"testing"

	"github.com/rusq/slack"
	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	var su slack.User
	su.ID = "U01"
	su.Profile.RealNameNormalized = "Ann Chovey"
	su.Profile.Email = "ann@example.com"

	u := NewUser(su)
	assert.Equal(t, &User{SourceID: "U01", DisplayName: "Ann Chovey", Email: "ann@example.com"}, u)
	assert.False(t, u.IsResolved())
	u.TargetID = "aad-0001"
	assert.True(t, u.IsResolved())
}

func TestUsers_IndexByID(t *testing.T) {
	uu := Users{
		{SourceID: "U01", DisplayName: "Ann"},
		{SourceID: "U02", DisplayName: "Bob"},
	}
	idx := uu.IndexByID()
	assert.Len(t, idx, 2)
	assert.Same(t, uu[1], idx["U02"])
}
