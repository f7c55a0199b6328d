package recipe

import (
	"context"
	"errors"
	"net/http"

	recipeService "recipe-finder/internal/core/recipe"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pipeline 處理器需要的食譜流程
type Pipeline interface {
	Search(ctx context.Context, req common.SearchRequest) (*common.SearchResponse, error)
	Match(ctx context.Context, req common.MatchRequest) (*common.MatchResponse, error)
	Normalize(req common.NormalizeRequest) (*common.NormalizeResponse, error)
}

var _ Pipeline = (*recipeService.Pipeline)(nil)

// Handler 食譜相關 API
type Handler struct {
	pipeline Pipeline
}

// NewHandler 創建處理器
func NewHandler(p Pipeline) *Handler {
	return &Handler{pipeline: p}
}

// HandleSearch 食譜搜尋
func (h *Handler) HandleSearch(c *gin.Context) {
	requestID := common.RequestID(c)

	var req common.SearchRequest
	if !bindJSON(c, requestID, &req) {
		return
	}
	common.LogDebug("食譜搜尋請求",
		zap.String("request_id", requestID),
		zap.String("ingredients", req.Ingredients),
		zap.Int("meal_count", req.MealCount),
		zap.Bool("allow_extra", req.AllowExtraIngredients),
	)

	resp, err := h.pipeline.Search(c.Request.Context(), req)
	if err != nil {
		writeError(c, requestID, err)
		return
	}

	common.LogInfo("食譜搜尋成功",
		zap.String("request_id", requestID),
		zap.Bool("fallback", resp.Fallback),
		zap.Int("total_recipes", resp.TotalRecipes),
	)
	c.JSON(http.StatusOK, resp)
}

// HandleMatch 以食材比對備用食譜庫
func (h *Handler) HandleMatch(c *gin.Context) {
	requestID := common.RequestID(c)

	var req common.MatchRequest
	if !bindJSON(c, requestID, &req) {
		return
	}

	resp, err := h.pipeline.Match(c.Request.Context(), req)
	if err != nil {
		writeError(c, requestID, err)
		return
	}

	common.LogInfo("食材比對完成",
		zap.String("request_id", requestID),
		zap.Int("total_recipes", resp.TotalRecipes),
	)
	c.JSON(http.StatusOK, resp)
}

// HandleNormalize 只回傳修正與正規化結果
func (h *Handler) HandleNormalize(c *gin.Context) {
	requestID := common.RequestID(c)

	var req common.NormalizeRequest
	if !bindJSON(c, requestID, &req) {
		return
	}

	resp, err := h.pipeline.Normalize(req)
	if err != nil {
		writeError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// bindJSON 解析請求體；格式錯誤視為驗證失敗
func bindJSON(c *gin.Context, requestID string, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.WriteErrorResponse(c, http.StatusBadRequest,
			common.ErrCodeInvalidRequest, common.ErrInvalidRequest.Message)
		return false
	}
	return true
}

func writeError(c *gin.Context, requestID string, err error) {
	if common.IsValidationError(err) {
		common.LogWarn("請求驗證失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.WriteErrorResponse(c, http.StatusBadRequest, common.ErrCodeInvalidRequest, err.Error())
		return
	}

	var ce *common.CustomError
	if errors.As(err, &ce) {
		common.LogError("請求處理失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.WriteCustomError(c, ce)
		return
	}

	common.LogError("請求處理失敗",
		zap.Error(err),
		zap.String("request_id", requestID),
	)
	common.WriteCustomError(c, common.ErrInternalError)
}
