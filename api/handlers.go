package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/seo-optimizer/contentscore/analyzer"
	"github.com/seo-optimizer/contentscore/middleware"
)

// analyzeRequest is the body of POST /api/analyze. Input is kept raw so that
// a value that is not an object yields an empty result instead of an error.
type analyzeRequest struct {
	Input  json.RawMessage  `json:"input"`
	Config *analyzer.Config `json:"config"`
}

var errMissingInput = errors.New("missing input")

func (s *server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (s *server) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var request analyzeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}
	if len(request.Input) == 0 {
		_ = c.Error(errMissingInput)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The request has no input",
		})
		return
	}

	var peek struct {
		Slug string `json:"slug"`
	}
	if json.Unmarshal(request.Input, &peek) == nil {
		c.Set(middleware.SlugKey, peek.Slug)
	}

	s.log.WithFields(logrus.Fields{
		"client":     c.ClientIP(),
		"request_id": middleware.RequestID(c),
	}).Debug("Analyze request received")

	c.JSON(http.StatusOK, s.analyzer.AnalyzeJSON(request.Input, request.Config))
}

func (s *server) rules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"groups":     analyzer.Groups(),
		"thresholds": analyzer.DefaultThresholds(),
	})
}

func (s *server) statistics(c *gin.Context) {
	response := gin.H{
		"cache": s.analyzer.GetCacheStats(),
	}
	if s.traffic != nil {
		response["traffic"] = s.traffic.Snapshot(s.devMode)
	}
	if s.stats != nil {
		response["currentMonth"] = s.stats.GetCurrentStats()
		if s.devMode {
			response["months"] = s.stats.GetAllMonths()
		}
	}
	c.JSON(http.StatusOK, response)
}
