package game

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notpritamm/emergent-wordle/domain"
	"github.com/notpritamm/emergent-wordle/leaderboard"
	"github.com/notpritamm/emergent-wordle/logger"
	"github.com/notpritamm/emergent-wordle/user"
)

// Handler wires the request boundary to the room registry, the hub and the
// supporting services.
type Handler struct {
	registry *Registry
	hub      *Hub
	users    *user.Store
	scores   *leaderboard.Service
}

func NewHandler(registry *Registry, hub *Hub, users *user.Store, scores *leaderboard.Service) *Handler {
	return &Handler{registry: registry, hub: hub, users: users, scores: scores}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/users/login", h.LoginHandler)

	api.GET("/rooms", h.ListRoomsHandler)
	api.POST("/rooms", h.CreateRoomHandler)
	api.POST("/rooms/join", h.JoinRoomHandler)
	api.GET("/rooms/:id", h.RoomDetailHandler)
	api.POST("/rooms/:id/leave", h.LeaveRoomHandler)
	api.POST("/rooms/words", h.AddWordHandler)
	api.DELETE("/rooms/:id/words/:word", h.RemoveWordHandler)
	api.POST("/rooms/members", h.ManageMemberHandler)
	api.POST("/rooms/start-game", h.StartGameHandler)
	api.GET("/rooms/:id/leaderboard", h.RoomLeaderboardHandler)

	api.POST("/game/guess", h.SubmitGuessHandler)
	api.GET("/game/state/:roomId", h.GameStateHandler)
	api.POST("/game/update", h.GameUpdateHandler)

	api.POST("/scores", h.ScoresHandler)
	api.GET("/leaderboard", h.GlobalLeaderboardHandler)

	api.GET("/ws/:roomId", h.WebsocketHandler)
}

// abortWithError maps the error taxonomy onto HTTP statuses. State errors
// are protocol misuse, so they are logged and surfaced generically.
func abortWithError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrWrongPassword):
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "incorrect password"})
	case errors.Is(err, domain.ErrAuth):
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "forbidden"})
	case errors.Is(err, domain.ErrValidation):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "not found"})
	case errors.Is(err, domain.ErrConflict):
		ctx.AbortWithStatusJSON(http.StatusConflict, gin.H{"detail": err.Error()})
	case errors.Is(err, domain.ErrState):
		logger.Warningf("protocol misuse: %v", err)
		ctx.AbortWithStatusJSON(http.StatusConflict, gin.H{"detail": "invalid game state"})
	default:
		logger.Errorf("unhandled error at boundary: %v", err)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "unknown error"})
	}
}

type userRef struct {
	Username string `json:"username"`
}

func (h *Handler) LoginHandler(ctx *gin.Context) {
	var body userRef
	if err := ctx.ShouldBindJSON(&body); err != nil || body.Username == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "username required"})
		return
	}

	u, created := h.users.Login(body.Username)
	if created {
		logger.Infof("new user created: %s", u.Username)
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "username": u.Username})
}

func (h *Handler) ListRoomsHandler(ctx *gin.Context) {
	filter := ListFilter{
		SortBy:    ctx.Query("sort_by"),
		SortOrder: ctx.Query("sort_order"),
	}
	if q := ctx.Query("is_public"); q == "true" || q == "false" {
		isPrivate := q == "false"
		filter.Private = &isPrivate
	}
	ctx.JSON(http.StatusOK, h.registry.ListRooms(filter))
}

func (h *Handler) CreateRoomHandler(ctx *gin.Context) {
	var body struct {
		RoomData struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			IsPrivate   bool   `json:"isPrivate"`
			Password    string `json:"password"`
		} `json:"room_data"`
		User userRef `json:"user"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "bad request format"})
		return
	}

	roomID, err := h.registry.CreateRoom(body.RoomData.Name, body.RoomData.Description,
		body.RoomData.IsPrivate, body.RoomData.Password, body.User.Username)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"roomId": roomID})
}

func (h *Handler) JoinRoomHandler(ctx *gin.Context) {
	var body struct {
		JoinData struct {
			RoomID   string `json:"roomId"`
			Password string `json:"password"`
		} `json:"join_data"`
		User userRef `json:"user"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "bad request format"})
		return
	}

	detail, err := h.registry.JoinRoom(body.JoinData.RoomID, body.User.Username, body.JoinData.Password)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

func (h *Handler) RoomDetailHandler(ctx *gin.Context) {
	detail, err := h.registry.RoomDetail(ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

func (h *Handler) LeaveRoomHandler(ctx *gin.Context) {
	var body userRef
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "bad request format"})
		return
	}

	if err := h.registry.LeaveRoom(ctx.Param("id"), body.Username); err != nil {
		abortWithError(ctx, err)
		return
	}
	h.hub.DisconnectUser(ctx.Param("id"), body.Username)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) AddWordHandler(ctx *gin.Context) {
	var body struct {
		AddData struct {
			RoomID string `json:"roomId"`
			Word   string `json:"word"`
		} `json:"add_data"`
		User userRef `json:"user"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "bad request format"})
		return
	}

	if err := h.registry.AddWord(body.AddData.RoomID, body.User.Username, body.AddData.Word); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) RemoveWordHandler(ctx *gin.Context) {
	var body struct {
		User userRef `json:"user"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "bad request format"})
		return
	}

	if err := h.registry.RemoveWord(ctx.Param("id"), body.User.Username, ctx.Param("word")); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ManageMemberHandler(ctx *gin.Context) {
	var body struct {
		UpdateData struct {
			RoomID   string `json:"roomId"`
			Username string `json:"username"`
			Action   string `json:"action"`
		} `json:"update_data"`
		User userRef `json:"user"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "bad request format"})
		return
	}
	if body.UpdateData.Action != "remove" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "unsupported action"})
		return
	}

	if err := h.registry.RemoveMember(body.UpdateData.RoomID, body.User.Username, body.UpdateData.Username); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) StartGameHandler(ctx *gin.Context) {
	var body struct {
		GameData struct {
			RoomID              string `json:"roomId"`
			AutoSelectWordCount int    `json:"autoSelectWordCount"`
			OwnerPlaying        *bool  `json:"ownerPlaying"`
		} `json:"game_data"`
		User userRef `json:"user"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "bad request format"})
		return
	}

	opts := StartOptions{
		AutoSelectWordCount: body.GameData.AutoSelectWordCount,
		OwnerPlaying:        true,
	}
	if body.GameData.OwnerPlaying != nil {
		opts.OwnerPlaying = *body.GameData.OwnerPlaying
	}

	if err := h.registry.StartGame(body.GameData.RoomID, body.User.Username, opts); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) SubmitGuessHandler(ctx *gin.Context) {
	var body struct {
		RoomID   string `json:"roomId"`
		Username string `json:"username"`
		Guess    string `json:"guess"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "bad request format"})
		return
	}

	row, err := h.registry.SubmitGuess(body.RoomID, body.Username, body.Guess)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"row": row})
}

func (h *Handler) GameStateHandler(ctx *gin.Context) {
	snap, err := h.registry.SessionState(ctx.Param("roomId"), ctx.Query("username"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

func (h *Handler) GameUpdateHandler(ctx *gin.Context) {
	var body struct {
		RoomID         string   `json:"roomId"`
		Username       string   `json:"username"`
		BoardData      [][]Cell `json:"boardData"`
		CurrentAttempt int      `json:"currentAttempt"`
		GameOver       bool     `json:"gameOver"`
		Won            bool     `json:"won"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "bad request format"})
		return
	}

	err := h.registry.ApplySnapshot(body.RoomID, body.Username, body.BoardData,
		body.CurrentAttempt, body.GameOver, body.Won)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// ScoresHandler is the original direct score-report path; kept for clients
// that finish a solo round without the authoritative guess endpoint.
func (h *Handler) ScoresHandler(ctx *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Won      bool   `json:"won"`
		Word     string `json:"word"`
		Attempts int    `json:"attempts"`
		RoomID   string `json:"roomId"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil || body.Username == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "bad request format"})
		return
	}
	if !h.users.Exists(body.Username) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}

	h.scores.RecordResult(body.Username, body.RoomID, body.Won, body.Attempts)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) RoomLeaderboardHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.scores.GetRoom(ctx.Param("id")))
}

func (h *Handler) GlobalLeaderboardHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.scores.GetGlobal())
}
