package handlers

import (
	"net/http"

	"references-archive/helper"
	"references-archive/models"
	"references-archive/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		Helper:         helper.NewHTTPHelper(),
	}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	articles := h.articleService.GetArticles(params)

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    len(articles),
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetArticle(c.Param("id"))
	if err != nil {
		c.JSON(h.Helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		h.Helper.SendValidationError(c, err.(validator.ValidationErrors))
		return
	}

	article, err := h.articleService.CreateArticle(req)
	if err != nil {
		c.JSON(h.Helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}
	articlesCreated.Inc()

	c.JSON(http.StatusCreated, article)
}

// DeleteArticle is idempotent: deleting an id that is already gone still
// answers success.
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if h.articleService.DeleteArticle(c.Param("id")) {
		articlesDeleted.Inc()
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

func (h *ArticleHandler) GetCitations(c *gin.Context) {
	citations, err := h.articleService.Citations(c.Param("id"))
	if err != nil {
		c.JSON(h.Helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, citations)
}

// Download redirects to the article's external download URL. The core never
// fetches the target itself; articles without a URL answer with an
// informational notice.
func (h *ArticleHandler) Download(c *gin.Context) {
	url, err := h.articleService.DownloadURL(c.Param("id"))
	if err != nil {
		c.JSON(h.Helper.GetStatusCode(err), gin.H{"message": err.Error()})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, url)
}
