package puzzleapi

import (
	"errors"
	"net/http"
	"strconv"

	identityapi "github.com/beka-birhanu/labyrinth-api/api/identity"
	"github.com/beka-birhanu/labyrinth-api/search"
	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PuzzleController manages maze session operations.
type PuzzleController struct {
	puzzleService i.PuzzleManager
}

// NewPuzzleController initializes a PuzzleController.
func NewPuzzleController(ps i.PuzzleManager) (*PuzzleController, error) {
	if ps == nil {
		return nil, errors.New("puzzle manager is required")
	}
	return &PuzzleController{puzzleService: ps}, nil
}

// RegisterPublic registers public routes.
func (pc *PuzzleController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (pc *PuzzleController) RegisterProtected(route *gin.RouterGroup) {
	puzzles := route.Group("/puzzles")
	{
		puzzles.POST("", pc.create)
		puzzles.GET("/:ID", pc.get)
		puzzles.POST("/:ID/solve", pc.solve)
		puzzles.GET("/:ID/frames/:IDX", pc.frame)
	}
}

// create handles maze generation requests.
func (pc *PuzzleController) create(ctx *gin.Context) {
	var request CreatePuzzleRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	puzzle, err := pc.puzzleService.Create(request.Rows, request.Cols, request.Seed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newPuzzleResponse(puzzle))
}

// get retrieves a maze session.
func (pc *PuzzleController) get(ctx *gin.Context) {
	id, ok := pc.puzzleID(ctx)
	if !ok {
		return
	}

	puzzle, err := pc.puzzleService.Get(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newPuzzleResponse(puzzle))
}

// solve runs the shortest-path search between the requested endpoints.
func (pc *PuzzleController) solve(ctx *gin.Context) {
	id, ok := pc.puzzleID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solver := identityapi.UserIDFromContext(ctx)
	solution, err := pc.puzzleService.Solve(id, *request.Start, *request.Goal, solver)
	switch {
	case errors.Is(err, service.ErrPuzzleNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, search.ErrInvalidEndpoint):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving puzzle"})
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(solution))
}

// frame serves one replay frame of the latest solution.
func (pc *PuzzleController) frame(ctx *gin.Context) {
	id, ok := pc.puzzleID(ctx)
	if !ok {
		return
	}

	index, err := strconv.Atoi(ctx.Params.ByName("IDX"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "frame index must be an integer"})
		return
	}

	view, err := pc.puzzleService.Frame(id, index)
	switch {
	case errors.Is(err, service.ErrPuzzleNotFound), errors.Is(err, service.ErrNoSuchFrame):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrNotSolved):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering frame"})
		return
	}

	ctx.JSON(http.StatusOK, newFrameResponse(view))
}

// puzzleID parses the :ID path parameter, replying 400 itself on failure.
func (pc *PuzzleController) puzzleID(ctx *gin.Context) (uuid.UUID, bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}
