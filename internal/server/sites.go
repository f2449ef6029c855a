package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	sitedomain "github.com/smallbiznis/sitesapi/internal/site/domain"
)

const (
	sampleResponseBase     = "This is a sample response to test if SitesController is responding appropriately. "
	sampleParamProvided    = sampleResponseBase + "The request param you passed was: "
	noSampleParamProvided  = sampleResponseBase + "No request param was provided."
	sampleExceptionMessage = sampleResponseBase + "An expected error was thrown."
)

var errSampleFailure = errors.New("sample_failure")

func (s *Server) ListSites(c *gin.Context) {
	req := sitedomain.ListRequest{
		State: optionalQuery(c.GetQuery("state")),
	}

	items, err := s.siteSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if len(items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (s *Server) GetSiteByID(c *gin.Context) {
	id, err := parseSiteID(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.siteSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if resp == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Sample echoes a fixed message so callers can check the controller is reachable.
func (s *Server) Sample(c *gin.Context) {
	var query struct {
		Message    string `form:"message"`
		ThrowError string `form:"throwError"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	throwError, err := parseOptionalBool(query.ThrowError)
	if err != nil {
		AbortWithError(c, newValidationError("throwError", "invalid_throw_error", "throwError must be a boolean"))
		return
	}
	if throwError != nil && *throwError {
		AbortWithError(c, fmt.Errorf("%w: %s", errSampleFailure, sampleExceptionMessage))
		return
	}

	if query.Message == "" {
		c.String(http.StatusOK, noSampleParamProvided)
		return
	}
	c.String(http.StatusOK, sampleParamProvided+query.Message)
}
