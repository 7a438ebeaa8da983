package service

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	bookmodel "bookly-backend/internal/domains/book/model"
	profilemodel "bookly-backend/internal/domains/profile/model"
	usermodel "bookly-backend/internal/domains/user/model"
	"bookly-backend/internal/domains/userfull/model"
	"bookly-backend/internal/shared"
	"bookly-backend/internal/shared/storeguard"
)

const (
	opFindUser    = "users.findById"
	opFindProfile = "profiles.findById"
	opFindBooks   = "books.findByIds"
)

type userFullService struct {
	users    UserFinder
	profiles ProfileFinder
	books    BookFinder
	guard    *storeguard.Guard
}

func NewUserFullService(users UserFinder, profiles ProfileFinder, books BookFinder, guard *storeguard.Guard) ServiceInterface {
	return &userFullService{
		users:    users,
		profiles: profiles,
		books:    books,
		guard:    guard,
	}
}

func (s *userFullService) GetUserFull(ctx context.Context, id shared.UserID) (*model.UserFull, error) {
	var (
		userRes    storeguard.Result[*usermodel.User]
		profileRes storeguard.Result[*profilemodel.Profile]
	)

	// The guard absorbs every failure, so neither goroutine returns an error.
	var g errgroup.Group
	g.Go(func() error {
		userRes = s.findUser(ctx, id)
		return nil
	})
	g.Go(func() error {
		profileRes = storeguard.FetchOne(ctx, s.guard, storeguard.Document, opFindProfile,
			func(ctx context.Context) (*profilemodel.Profile, error) {
				return s.profiles.FindByID(ctx, id)
			})
		return nil
	})
	_ = g.Wait()

	if !userRes.Found() && !profileRes.Found() {
		return nil, model.ErrUserFullNotFound
	}

	out := &model.UserFull{}
	if userRes.Found() {
		out.User = userRes.Value
	}
	if profileRes.Found() {
		out.Profile = s.buildProfile(ctx, profileRes.Value)
	}
	return out, nil
}

// findUser skips PostgreSQL for ids no users row could carry.
func (s *userFullService) findUser(ctx context.Context, id shared.UserID) storeguard.Result[*usermodel.User] {
	n, ok := id.Int64()
	if !ok {
		return storeguard.Result[*usermodel.User]{Outcome: storeguard.NotFound}
	}
	return storeguard.FetchOne(ctx, s.guard, storeguard.Relational, opFindUser,
		func(ctx context.Context) (*usermodel.User, error) {
			return s.users.FindByID(ctx, n)
		})
}

func (s *userFullService) buildProfile(ctx context.Context, p *profilemodel.Profile) *model.ProfileView {
	p.EnsureDefaults()
	titles := s.resolveTitles(ctx, p.BookIDs())

	history := make([]model.HistoryView, 0, len(p.History))
	for _, e := range p.History {
		book := e.BookID
		if title, found := titles[e.BookID]; found && title != "" {
			book = title
		}
		history = append(history, model.HistoryView{
			BookID:   e.BookID,
			Book:     book,
			Rating:   e.Rating,
			Comment:  e.Comment,
			ReadDate: e.ReadDate,
		})
	}

	return &model.ProfileView{
		Preferences: p.Preferences,
		History:     history,
	}
}

// resolveTitles issues at most one query however long the history is. Titles are keyed by the
// canonical decimal id, so only a bookId spelled exactly like the book's id is enriched ("03" is not).
// On failure it returns an empty map and every entry falls back to its raw bookId.
func (s *userFullService) resolveTitles(ctx context.Context, rawIDs []string) map[string]string {
	ids := make([]int64, 0, len(rawIDs))
	seen := make(map[int64]struct{}, len(rawIDs))
	for _, raw := range rawIDs {
		n, ok := shared.ParseID(raw)
		if !ok {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		ids = append(ids, n)
	}

	titles := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return titles
	}

	res := storeguard.Fetch(ctx, s.guard, storeguard.Relational, opFindBooks,
		func(ctx context.Context) ([]bookmodel.Book, bool, error) {
			books, err := s.books.FindByIDs(ctx, ids)
			return books, len(books) > 0, err
		})
	if !res.Found() {
		return titles
	}

	for _, b := range res.Value {
		titles[strconv.FormatInt(b.ID, 10)] = b.Title
	}
	return titles
}
