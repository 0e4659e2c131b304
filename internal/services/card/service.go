package card

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/cardport/internal/database"
	"github.com/thenoetrevino/cardport/internal/models"
)

// Service defines read access to imported cards, scoped to a principal's account
type Service interface {
	ListCards(ctx context.Context, email, boardName string) ([]*models.CardSummary, error)
	GetCardDetail(ctx context.Context, email string, number int) (*models.CardDetail, error)
}

// repository defines the data access methods needed by the card service
type repository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetBoardsByAccount(ctx context.Context, accountID int) ([]*models.Board, error)
	GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error)
	GetCardByNumber(ctx context.Context, accountID, number int) (*models.Card, error)
	GetCardSummaries(ctx context.Context, accountID int, boardName string) ([]*models.CardSummary, error)
	GetCommentsForCard(ctx context.Context, cardID int) ([]*models.Comment, error)
	GetAttachmentsForCard(ctx context.Context, cardID int) ([]*models.Attachment, error)
}

type service struct {
	repo repository
}

// NewService creates a new card service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// ListCards returns the account's cards ordered by number. An empty board
// name lists every board.
func (s *service) ListCards(ctx context.Context, email, boardName string) ([]*models.CardSummary, error) {
	user, err := s.principal(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.repo.GetCardSummaries(ctx, user.AccountID, strings.TrimSpace(boardName))
}

// GetCardDetail loads a card with its board, column, comments and attachments
func (s *service) GetCardDetail(ctx context.Context, email string, number int) (*models.CardDetail, error) {
	if number < 0 {
		return nil, ErrInvalidNumber
	}
	user, err := s.principal(ctx, email)
	if err != nil {
		return nil, err
	}

	card, err := s.repo.GetCardByNumber(ctx, user.AccountID, number)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: #%d", ErrCardNotFound, number)
		}
		return nil, err
	}

	detail := &models.CardDetail{Card: card}

	boards, err := s.repo.GetBoardsByAccount(ctx, user.AccountID)
	if err != nil {
		return nil, err
	}
	for _, b := range boards {
		if b.ID == card.BoardID {
			detail.BoardName = b.Name
			break
		}
	}

	if card.ColumnID != nil {
		columns, err := s.repo.GetColumnsByBoard(ctx, card.BoardID)
		if err != nil {
			return nil, err
		}
		for _, c := range columns {
			if c.ID == *card.ColumnID {
				detail.ColumnName = c.Name
				break
			}
		}
	}

	if detail.Comments, err = s.repo.GetCommentsForCard(ctx, card.ID); err != nil {
		return nil, err
	}
	if detail.Attachments, err = s.repo.GetAttachmentsForCard(ctx, card.ID); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *service) principal(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPrincipalNotFound, email)
		}
		return nil, err
	}
	return user, nil
}
