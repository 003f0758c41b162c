package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/bulletin/core/academic"
)

func registerProfileAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	g.GET("/subjects", listSubjects)
	g.GET("/grading-scale", gradingScale)

	pg := g.Group("/profiles", jwt)
	pg.POST("/validate", validateDraft)
	pg.POST("", createProfile)
}

type (
	SubjectResponse struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	}

	ValidateResponse struct {
		Errors []string `json:"errors"`
	}
)

func listSubjects(ctx echo.Context) error {
	subjects := make([]SubjectResponse, 0, academic.NumSubjects)
	for _, s := range academic.Subjects {
		subjects = append(subjects, SubjectResponse{Key: s.Key(), Name: s.String()})
	}
	return ctx.JSON(http.StatusOK, subjects)
}

func gradingScale(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, academic.Scale())
}

// validateDraft reports every problem with the draft, in display order.
func validateDraft(ctx echo.Context) error {
	var draft academic.Draft
	if err := ctx.Bind(&draft); err != nil {
		return errors.Wrap(err, "binding to Draft")
	}
	return ctx.JSON(http.StatusOK, ValidateResponse{Errors: academic.Validate(draft)})
}

// createProfile assembles the profile of a valid draft. Nothing is stored.
func createProfile(ctx echo.Context) error {
	var draft academic.Draft
	if err := ctx.Bind(&draft); err != nil {
		return errors.Wrap(err, "binding to Draft")
	}
	profile, err := academic.Build(draft)
	if err != nil {
		return errors.Wrap(err, "building profile")
	}
	return ctx.JSON(http.StatusOK, profile)
}
