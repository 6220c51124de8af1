package controllers

import (
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/Prometheus-first/worldguide/app/models"
	"github.com/Prometheus-first/worldguide/app/repository"
	"github.com/Prometheus-first/worldguide/internal/pkg/htmlmeta"
	"github.com/Prometheus-first/worldguide/internal/pkg/usercontext"
)

// HandleArticleList renders all articles, newest first. Excerpts are not
// stored; they are synthesized from the content on every call.
func HandleArticleList(c *fiber.Ctx) error {
	articles, err := repository.GetGlobalFactory().GetArticleRepository().List()
	if err != nil {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}

	list := make([]fiber.Map, 0, len(articles))
	for _, article := range articles {
		list = append(list, fiber.Map{
			"Article": article,
			"Excerpt": htmlmeta.Excerpt(article.Content),
			"Created": formatTimestamp(article.CreatedAt),
		})
	}

	return c.Render("article_list", fiber.Map{
		"Articles": list,
	})
}

// HandleArticleDetail renders a single article. Every hit counts as a
// view; there is no per-viewer dedup.
func HandleArticleDetail(c *fiber.Ctx) error {
	articleID := c.Params("id")
	if !isValidID(articleID) {
		return c.Redirect("/articles", fiber.StatusSeeOther)
	}

	repos := repository.GetGlobalFactory().GetRepositories()

	article, err := repos.Article.GetByUUID(articleID)
	if err != nil {
		return c.Redirect("/articles", fiber.StatusSeeOther)
	}

	if err := repos.Article.IncrementViews(articleID); err != nil {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}

	headings := htmlmeta.Headings(article.Content)

	related, err := repos.Article.GetRelated(article.Category, articleID, 3)
	if err != nil {
		related = nil
	}

	// Author panel: public profile plus aggregates computed by scanning
	var author *models.User
	var articleCount, totalViews int64
	if article.AuthorID != 0 {
		if u, err := repos.User.GetByID(article.AuthorID); err == nil {
			author = u
			articleCount, _ = repos.Article.CountByAuthor(article.AuthorID)
			totalViews, _ = repos.Article.SumViewsByAuthor(article.AuthorID)
		}
	}

	return c.Render("article_detail", fiber.Map{
		"Article":      article,
		"ContentHTML":  template.HTML(article.Content),
		"Headings":     headings,
		"Related":      related,
		"Author":       author,
		"ArticleCount": articleCount,
		"TotalViews":   totalViews,
	})
}

// HandlePublishPage renders the article editor. With a draft_id query
// parameter the caller's draft is loaded into the editor.
func HandlePublishPage(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	var draft *models.Draft
	if draftID := c.Query("draft_id"); draftID != "" && isValidID(draftID) {
		if d, err := repository.GetGlobalFactory().GetDraftRepository().
			GetByUUIDForAuthor(draftID, userCtx.UserID); err == nil {
			draft = d
		}
	}

	return c.Render("publish_article", fiber.Map{
		"Draft": draft,
	})
}

// HandleEditArticlePage renders the editor for an existing article.
// A missing article and someone else's article look the same: back to
// the user center.
func HandleEditArticlePage(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	articleID := c.Params("id")
	if !isValidID(articleID) {
		return c.Redirect("/user-center", fiber.StatusSeeOther)
	}

	article, err := repository.GetGlobalFactory().GetArticleRepository().GetByUUID(articleID)
	if err != nil || article.AuthorID != userCtx.UserID {
		return c.Redirect("/user-center", fiber.StatusSeeOther)
	}

	return c.Render("edit_article", fiber.Map{
		"Article": article,
	})
}

// HandleUserCenter renders the logged-in user's dashboard: their
// articles, drafts and aggregate stats.
func HandleUserCenter(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	repos := repository.GetGlobalFactory().GetRepositories()

	user, err := repos.User.GetByID(userCtx.UserID)
	if err != nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	articles, err := repos.Article.ListByAuthor(userCtx.UserID)
	if err != nil {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}

	articleList := make([]fiber.Map, 0, len(articles))
	for _, article := range articles {
		articleList = append(articleList, fiber.Map{
			"Article": article,
			"Excerpt": htmlmeta.Excerpt(article.Content),
			"Created": formatTimestamp(article.CreatedAt),
		})
	}

	drafts, err := repos.Draft.ListByAuthor(userCtx.UserID)
	if err != nil {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}

	draftList := make([]fiber.Map, 0, len(drafts))
	for _, draft := range drafts {
		draftList = append(draftList, fiber.Map{
			"Draft":   draft,
			"Updated": formatTimestamp(draft.UpdatedAt),
		})
	}

	totalViews, _ := repos.Article.SumViewsByAuthor(userCtx.UserID)
	totalLikes, _ := repos.Article.SumLikesByAuthor(userCtx.UserID)

	return c.Render("user_center", fiber.Map{
		"User": fiber.Map{
			"Username":      user.Name,
			"Email":         user.Email,
			"TotalArticles": len(articles),
			"TotalViews":    totalViews,
			"TotalLikes":    totalLikes,
			"JoinDate":      formatDate(user.CreatedAt),
		},
		"Articles": articleList,
		"Drafts":   draftList,
	})
}
