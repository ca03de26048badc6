package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserFromContext(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	user := &model.User{ID: uuid.New(), Email: "someone@example.com"}
	c.Set("user", user)

	got, err := GetUserFromContext(c)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestGetUserFromContext_NoUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetUserFromContext(c)

	require.Error(t, err)
	assert.True(t, errdef.IsUnauthorized(err))
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("user", "not-a-user")

	_, err := GetUserFromContext(c)

	require.Error(t, err)
	assert.True(t, errdef.IsUnauthorized(err))
}
