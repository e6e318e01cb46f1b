// Package mazeapi exposes maze solving and solve history over HTTP.
package mazeapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-solver/api/identity"
	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/search"
	"github.com/beka-birhanu/vinom-solver/service"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultRecordName = "untitled"

	// JSON escaping can double a maze (every newline becomes \n), plus room
	// for the other request fields.
	bodyOverhead = 4 << 10
)

// MazeController serves solve requests and the caller's history.
type MazeController struct {
	solver       i.MazeSolver
	maxBodyBytes int64
}

// NewMazeController initializes a MazeController. Request bodies are capped
// at twice maxMazeBytes plus a small overhead; 0 disables the cap.
func NewMazeController(solver i.MazeSolver, maxMazeBytes int) (*MazeController, error) {
	if solver == nil {
		return nil, errors.New("maze controller requires a solver")
	}
	if maxMazeBytes < 0 {
		return nil, errors.New("maze size limit must not be negative")
	}

	mc := &MazeController{solver: solver}
	if maxMazeBytes > 0 {
		mc.maxBodyBytes = 2*int64(maxMazeBytes) + bodyOverhead
	}
	return mc, nil
}

// bindSolveRequest decodes the body, reading at most maxBodyBytes.
// It writes the error response itself and reports whether binding succeeded.
func (mc *MazeController) bindSolveRequest(ctx *gin.Context, request *SolveRequest) bool {
	if mc.maxBodyBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, mc.maxBodyBytes)
	}

	if err := ctx.ShouldBindJSON(request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": service.ErrMazeTooLarge.Error()})
			return false
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/solve", mc.solve)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	solutions := route.Group("/solutions")
	{
		solutions.POST("", mc.saveSolution)
		solutions.GET("", mc.listSolutions)
		solutions.GET("/:id", mc.solution)
	}
}

// solve handles anonymous solve requests.
func (mc *MazeController) solve(ctx *gin.Context) {
	var request SolveRequest
	if !mc.bindSolveRequest(ctx, &request) {
		return
	}

	result, err := mc.solver.Solve(ctx.Request.Context(), request.Maze, request.Strategy)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toSolutionResponse(result, request.IncludeExplored))
}

// saveSolution solves the maze and stores it in the caller's history.
func (mc *MazeController) saveSolution(ctx *gin.Context) {
	owner, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request SolveRequest
	if !mc.bindSolveRequest(ctx, &request) {
		return
	}
	if request.Name == "" {
		request.Name = defaultRecordName
	}

	record, err := mc.solver.SolveAndSave(ctx.Request.Context(), owner, request.Name, request.Maze, request.Strategy)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// listSolutions returns the caller's most recent records.
func (mc *MazeController) listSolutions(ctx *gin.Context) {
	owner, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	records, err := mc.solver.Records(ctx.Request.Context(), owner)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []*dmn.SolveRecord{}
	}

	ctx.JSON(http.StatusOK, gin.H{"solutions": records})
}

// solution returns one of the caller's records.
func (mc *MazeController) solution(ctx *gin.Context) {
	owner, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid solution id"})
		return
	}

	record, err := mc.solver.Record(ctx.Request.Context(), owner, id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, record)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrMalformedMaze), errors.Is(err, search.ErrUnknownStrategy):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrMazeTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, search.ErrNoSolution), errors.Is(err, search.ErrExpansionLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dmn.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
