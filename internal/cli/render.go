package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"blogsphere/internal/app"
	"blogsphere/internal/domain"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const (
	excerptLimit = 150
	dateLayout   = "2006-01-02 15:04"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed, color.Bold)
	headingColor = color.New(color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
)

func success(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, format+"\n", args...)
}

// PrintError writes a user-facing message for err.
func PrintError(w io.Writer, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		for _, f := range verr.Fields {
			errorColor.Fprintln(w, f.Message)
		}
	case errors.Is(err, domain.ErrDuplicateEmail):
		errorColor.Fprintln(w, "Email already registered!")
	case errors.Is(err, domain.ErrInvalidCredentials):
		errorColor.Fprintln(w, "Invalid email or password!")
	case errors.Is(err, domain.ErrPermission):
		errorColor.Fprintln(w, "You can only change your own posts!")
	case errors.Is(err, domain.ErrNotFound):
		errorColor.Fprintln(w, "Post not found!")
	case errors.Is(err, domain.ErrUnknownSection):
		errorColor.Fprintf(w, "Unknown section. Choose one of: %s\n", sectionNames())
	default:
		errorColor.Fprintf(w, "Error: %v\n", err)
	}
}

func sectionNames() string {
	names := make([]string, 0, len(app.Sections))
	for _, s := range app.Sections {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

func formatDate(t time.Time) string {
	return t.Local().Format(dateLayout)
}

// excerpt truncates text to limit characters, appending "..." when cut.
func excerpt(text string, limit int) string {
	r := []rune(text)
	if len(r) <= limit {
		return text
	}
	return string(r[:limit]) + "..."
}

func meta(authorName string, createdAt time.Time, category string) string {
	parts := []string{"By " + authorName, formatDate(createdAt)}
	if category != "" {
		parts = append(parts, category)
	}
	return strings.Join(parts, " • ")
}

func renderPosts(w io.Writer, posts []domain.Post, comments func(int64) int) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Title", "Author", "Date", "Category", "Comments", "Excerpt"})
	for _, p := range posts {
		table.Append([]string{
			strconv.FormatInt(p.ID, 10),
			p.Title,
			p.AuthorName,
			formatDate(p.CreatedAt),
			p.Category,
			strconv.Itoa(comments(p.ID)),
			strings.ReplaceAll(excerpt(p.Content, excerptLimit), "\n", " "),
		})
	}
	table.Render()
}

func renderPost(w io.Writer, p domain.Post, comments []domain.Comment) {
	headingColor.Fprintln(w, p.Title)
	mutedColor.Fprintln(w, meta(p.AuthorName, p.CreatedAt, p.Category))
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Content)
	fmt.Fprintln(w)

	headingColor.Fprintf(w, "Comments (%d)\n", len(comments))
	if len(comments) == 0 {
		fmt.Fprintln(w, "No comments yet. Be the first to comment!")
		return
	}
	for _, c := range comments {
		fmt.Fprintf(w, "%s  %s\n", headingColor.Sprint(c.AuthorName), mutedColor.Sprint(formatDate(c.CreatedAt)))
		fmt.Fprintf(w, "  %s\n", c.Content)
	}
}

func renderView(w io.Writer, a *app.App, v app.View) {
	switch v.Section {
	case app.SectionHome:
		headingColor.Fprintln(w, "Latest Posts")
		if len(v.Posts) == 0 {
			fmt.Fprintln(w, "No blog posts yet. Be the first to share your thoughts!")
			return
		}
		renderPosts(w, v.Posts, a.Content.CommentCount)
	case app.SectionDashboard:
		u, ok := a.Sessions.Current()
		if !ok {
			fmt.Fprintln(w, "Please login to see your dashboard.")
			return
		}
		headingColor.Fprintf(w, "Welcome, %s!\n", u.Name)
		if len(v.Posts) == 0 {
			fmt.Fprintln(w, "You haven't written any posts yet. Create your first post with: blogsphere post create")
			return
		}
		renderPosts(w, v.Posts, a.Content.CommentCount)
	case app.SectionViewPost:
		if v.Post != nil {
			renderPost(w, *v.Post, v.Comments)
		}
	case app.SectionLogin:
		fmt.Fprintln(w, "Log in with: blogsphere login --email <email>")
	case app.SectionRegister:
		fmt.Fprintln(w, "Create an account with: blogsphere register --name <name> --email <email>")
	case app.SectionCreate:
		fmt.Fprintln(w, "Write a post with: blogsphere post create --title <title> --content <content> [--category <category>]")
	}
}
