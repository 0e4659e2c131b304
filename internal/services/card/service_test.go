package card

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/cardport/internal/database"
	"github.com/thenoetrevino/cardport/internal/models"
	"github.com/thenoetrevino/cardport/internal/testutil"
)

// seed creates one board with a Backlog column, an open card 1 in it and a
// closed card 2 outside any column
func seed(t *testing.T) (*database.Repository, *models.User) {
	t.Helper()
	ctx := context.Background()
	repo := testutil.SetupTestRepo(t)
	account, user := testutil.CreateTestPrincipal(t, repo, "Acme", "Ada", "ada@example.com")
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	board, err := repo.CreateBoard(ctx, account.ID, user.ID, "Sprint", ts)
	require.NoError(t, err)
	column, err := repo.CreateColumn(ctx, board.ID, "Backlog")
	require.NoError(t, err)

	open, err := repo.CreateCard(ctx, database.CreateCardParams{
		AccountID: account.ID, BoardID: board.ID, ColumnID: &column.ID, Number: 1,
		Title: "Open card", Status: models.CardStatusPublished, CreatorID: user.ID,
		CreatedAt: ts, UpdatedAt: ts,
	})
	require.NoError(t, err)
	_, err = repo.CreateComment(ctx, open.ID, user.ID, "<p>note</p>", ts)
	require.NoError(t, err)
	_, err = repo.CreateAttachment(ctx, database.CreateAttachmentParams{
		CardID: open.ID, Filename: "report.pdf", ContentType: "application/pdf",
		ByteSize: 2048, Checksum: "abc", BlobKey: "key-1",
	})
	require.NoError(t, err)

	closed, err := repo.CreateCard(ctx, database.CreateCardParams{
		AccountID: account.ID, BoardID: board.ID, Number: 2,
		Title: "Closed card", Status: models.CardStatusPublished, CreatorID: user.ID,
		CreatedAt: ts, UpdatedAt: ts,
	})
	require.NoError(t, err)
	require.NoError(t, repo.CloseCard(ctx, closed.ID, user.ID, ts))

	return repo, user
}

func TestListCards(t *testing.T) {
	repo, user := seed(t)
	svc := NewService(repo)
	ctx := context.Background()

	cards, err := svc.ListCards(ctx, user.Email, "")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, 1, cards[0].Number)
	assert.Equal(t, "Backlog", cards[0].ColumnName)
	assert.Equal(t, models.LifecycleOpen, cards[0].Lifecycle)
	assert.Equal(t, models.LifecycleClosed, cards[1].Lifecycle)
	assert.Empty(t, cards[1].ColumnName)

	cards, err = svc.ListCards(ctx, user.Email, "Elsewhere")
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = svc.ListCards(ctx, "nobody@example.com", "")
	assert.ErrorIs(t, err, ErrPrincipalNotFound)
}

func TestListCards_ScopedToAccount(t *testing.T) {
	repo, _ := seed(t)
	_, outsider := testutil.CreateTestPrincipal(t, repo, "Other", "Bob", "bob@example.com")

	cards, err := NewService(repo).ListCards(context.Background(), outsider.Email, "")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestGetCardDetail(t *testing.T) {
	repo, user := seed(t)
	svc := NewService(repo)
	ctx := context.Background()

	detail, err := svc.GetCardDetail(ctx, user.Email, 1)
	require.NoError(t, err)
	assert.Equal(t, "Open card", detail.Title)
	assert.Equal(t, "Sprint", detail.BoardName)
	assert.Equal(t, "Backlog", detail.ColumnName)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "Ada", detail.Comments[0].Author)
	require.Len(t, detail.Attachments, 1)
	assert.Equal(t, "report.pdf", detail.Attachments[0].Filename)

	closed, err := svc.GetCardDetail(ctx, user.Email, 2)
	require.NoError(t, err)
	assert.Empty(t, closed.ColumnName)
	assert.Equal(t, models.LifecycleClosed, closed.Lifecycle())

	_, err = svc.GetCardDetail(ctx, user.Email, 99)
	assert.ErrorIs(t, err, ErrCardNotFound)

	_, err = svc.GetCardDetail(ctx, user.Email, -1)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}
