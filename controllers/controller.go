package controllers

import (
	"strconv"

	"github.com/Govind-619/Shelfnotes/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Controller holds the dependencies shared by every handler
type Controller struct {
	db utils.Gateway
}

// NewController creates a Controller issuing its queries through db
func NewController(db utils.Gateway) *Controller {
	return &Controller{db: db}
}

// bodyValues reads keys from a urlencoded form or a JSON body, in order.
// A missing key yields nil so the store sees NULL.
func bodyValues(c *gin.Context, keys ...string) ([]interface{}, error) {
	values := make([]interface{}, 0, len(keys))

	if c.ContentType() == binding.MIMEJSON {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			return nil, utils.WrapError(err, "invalid JSON body")
		}
		for _, key := range keys {
			values = append(values, body[key])
		}
		return values, nil
	}

	for _, key := range keys {
		if v, ok := c.GetPostForm(key); ok {
			values = append(values, v)
			continue
		}
		values = append(values, nil)
	}
	return values, nil
}

// pathID parses the named path parameter as a row id. An id that does not
// parse cannot match any row, so it is reported as notFound.
func pathID(c *gin.Context, name, notFound string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, utils.NotFoundError(notFound, err)
	}
	return id, nil
}
