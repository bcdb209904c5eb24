// Package seed fills an empty deployment with demo users, articles and
// comments through the regular services.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"blog-api/internal/logger"
	"blog-api/internal/service"
)

// DefaultPassword is shared by every demo user.
const DefaultPassword = "123456"

var usernames = []string{
	"alice", "bob", "charlie", "david", "eve",
	"frank", "grace", "heidi", "ivan", "judy",
}

var titles = []string{
	"Getting Started with Go",
	"Why Markdown is Awesome",
	"The Future of Web Development",
	"10 Tips for Clean Code",
	"Understanding Goroutines",
	"My Journey to Full Stack",
	"Context Cancellation in Practice",
	"CSS Grid vs Flexbox: A Comparison",
	"Deploying to Production",
	"The Power of Open Source",
}

var contents = []string{
	"# Introduction\n\nThis is a sample article written in **Markdown**.\n\n## Features\n- Bold text\n- Italic text\n- Lists",
	"# Deep Dive\n\nLet's explore the topic in depth.\n\n> Knowledge is power.\n\n1. First point\n2. Second point",
	"# My Thoughts\n\nI recently discovered something *amazing*. It was a `hidden gem` in the documentation.",
	"# Tutorial\n\nFollow these steps:\n\n```bash\ngo mod tidy\ngo run ./cmd/server\n```",
	"# Review\n\n| Pros | Cons |\n| --- | --- |\n| Fast | Verbose |\n\n**Verdict**: 8/10",
}

var commentTexts = []string{
	"Great article! Thanks for sharing.",
	"I found a typo in the **second paragraph**.",
	"Could you explain more about `select`?",
	"This helped me a lot. *Kudos!*",
	"Interesting perspective.",
	"I disagree with point #2.",
	"**Awesome** work!",
	"Please write more about this.",
	"First!",
}

var tagPool = []string{"tech", "coding", "go", "web", "backend"}

// Deps are the services the seeder writes through.
type Deps struct {
	Auth     service.AuthServiceInterface
	Articles service.ArticleServiceInterface
	Comments service.CommentServiceInterface
}

// Summary counts what a run created.
type Summary struct {
	Users    int
	Articles int
	Comments int
}

// Run creates ten users with one to three articles each and up to four
// comments per article from random users. rng makes runs reproducible.
func Run(ctx context.Context, deps Deps, rng *rand.Rand) (Summary, error) {
	var sum Summary

	userIDs := make([]string, 0, len(usernames))
	for _, name := range usernames {
		user, err := deps.Auth.Register(ctx, name, name+"@example.com", DefaultPassword)
		if err != nil {
			return sum, fmt.Errorf("seed user %s: %w", name, err)
		}
		userIDs = append(userIDs, user.ID)
		sum.Users++
	}

	for _, authorID := range userIDs {
		for i := rng.Intn(3) + 1; i > 0; i-- {
			article, err := deps.Articles.Create(ctx, authorID, service.ArticleInput{
				Title:   titles[rng.Intn(len(titles))],
				Content: contents[rng.Intn(len(contents))],
				Tags:    pickTags(rng, 3),
			})
			if err != nil {
				return sum, fmt.Errorf("seed article: %w", err)
			}
			sum.Articles++

			for j := rng.Intn(5); j > 0; j-- {
				commenter := userIDs[rng.Intn(len(userIDs))]
				if _, err := deps.Comments.Add(ctx, commenter, article.ID, commentTexts[rng.Intn(len(commentTexts))]); err != nil {
					return sum, fmt.Errorf("seed comment: %w", err)
				}
				sum.Comments++
			}
		}
	}

	logger.InfoContext(ctx, "Seed complete",
		slog.Int("users", sum.Users),
		slog.Int("articles", sum.Articles),
		slog.Int("comments", sum.Comments))
	return sum, nil
}

func pickTags(rng *rand.Rand, n int) []string {
	tags := make([]string, len(tagPool))
	copy(tags, tagPool)
	rng.Shuffle(len(tags), func(i, j int) { tags[i], tags[j] = tags[j], tags[i] })
	return tags[:n]
}
