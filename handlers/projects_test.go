package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithParam(name, value string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: name, Value: value}}
	return c
}

func TestParseIDParamValid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := contextWithParam("id", "42")

	id, err := parseIDParam(c, "id")

	assert.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestParseIDParamInvalid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := contextWithParam("id", "not-a-number")

	_, err := parseIDParam(c, "id")

	assert.Error(t, err)
}
