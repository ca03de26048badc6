package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPathParameter(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	got, ok := GetPathParameter(c, "id")

	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestGetPathParameter_Invalid(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	_, ok := GetPathParameter(c, "id")

	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
