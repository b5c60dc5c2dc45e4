package matchRepo

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/adityarizki/amora/internal/entity"
	"github.com/go-redis/redis"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IMatchRepo interface {
	// Swipes table
	CreateSwipe(ctx context.Context, actorID, targetID uint, action entity.SwipeAction) error
	GetSwipe(ctx context.Context, actorID, targetID uint) (*entity.Swipe, error)
	UpdateSwipeAction(ctx context.Context, actorID, targetID uint, action entity.SwipeAction) error
	HasLiked(ctx context.Context, actorID, targetID uint) (bool, error)

	// IDs of everyone the actor already liked or skipped, for feed exclusion
	SwipedTargetIDs(ctx context.Context, actorID uint) ([]uint, error)

	// Matches table
	FindOrCreateMatch(ctx context.Context, a, b uint) (match *entity.Match, created bool, err error)
	GetMatch(ctx context.Context, id uint) (*entity.Match, error)
	MatchesForUser(ctx context.Context, userID uint) ([]entity.Match, error)
	UpdateLastMessage(ctx context.Context, matchID uint, preview string) error
}

type MatchRepo struct {
	db  *gorm.DB
	rdb *redis.Client
}

func New(db *gorm.DB, rdb *redis.Client) IMatchRepo {
	return &MatchRepo{
		db:  db,
		rdb: rdb,
	}
}

func (m *MatchRepo) CreateSwipe(ctx context.Context, actorID, targetID uint, action entity.SwipeAction) error {
	swipe := entity.Swipe{
		ActorID:   actorID,
		TargetID:  targetID,
		Action:    action,
		CreatedAt: time.Now(),
	}

	// The composite primary key absorbs concurrent repeats; callers that
	// need to change an existing decision go through UpdateSwipeAction.
	res := m.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&swipe)
	if res.Error != nil {
		return res.Error
	}

	m.appendSwipedCache(actorID, targetID)
	return nil
}

func (m *MatchRepo) GetSwipe(ctx context.Context, actorID, targetID uint) (*entity.Swipe, error) {
	var swipe entity.Swipe
	res := m.db.WithContext(ctx).
		Where("actor_id = ? AND target_id = ?", actorID, targetID).
		First(&swipe)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &swipe, nil
}

func (m *MatchRepo) UpdateSwipeAction(ctx context.Context, actorID, targetID uint, action entity.SwipeAction) error {
	res := m.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Where("actor_id = ? AND target_id = ?", actorID, targetID).
		Updates(map[string]interface{}{
			"action":     action,
			"created_at": time.Now(),
		})
	return res.Error
}

func (m *MatchRepo) HasLiked(ctx context.Context, actorID, targetID uint) (bool, error) {
	var count int64
	res := m.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Where("actor_id = ? AND target_id = ? AND action = ?", actorID, targetID, entity.ActionLike).
		Count(&count)
	return count > 0, res.Error
}

func (m *MatchRepo) SwipedTargetIDs(ctx context.Context, actorID uint) ([]uint, error) {
	key := swipedKey(actorID)

	exists, err := m.rdb.Exists(key).Result()
	if err == nil && exists > 0 {
		var ids []uint
		if err := m.rdb.SMembers(key).ScanSlice(&ids); err == nil {
			return ids, nil
		}
	}

	var ids []uint
	res := m.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Select("target_id").
		Where("actor_id = ?", actorID).
		Find(&ids)
	if res.Error != nil {
		return nil, res.Error
	}

	for _, id := range ids {
		if err := m.rdb.SAdd(key, id).Err(); err != nil {
			log.Println("error warming swiped cache:", err)
			break
		}
	}
	m.rdb.Expire(key, cacheTTL())

	return ids, nil
}

// FindOrCreateMatch inserts the ordered pair with ON CONFLICT DO NOTHING and
// re-reads, so two reciprocal likes racing across instances still end up
// with a single match row.
func (m *MatchRepo) FindOrCreateMatch(ctx context.Context, a, b uint) (*entity.Match, bool, error) {
	lo, hi := entity.OrderPair(a, b)

	match := entity.Match{UserOneID: lo, UserTwoID: hi}
	res := m.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&match)
	if res.Error != nil {
		return nil, false, res.Error
	}

	created := res.RowsAffected > 0
	if created {
		return &match, true, nil
	}

	var existing entity.Match
	find := m.db.WithContext(ctx).
		Where("user_one_id = ? AND user_two_id = ?", lo, hi).
		First(&existing)
	return &existing, false, find.Error
}

func (m *MatchRepo) GetMatch(ctx context.Context, id uint) (*entity.Match, error) {
	var match entity.Match
	res := m.db.WithContext(ctx).Where("id = ?", id).First(&match)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	return &match, res.Error
}

func (m *MatchRepo) MatchesForUser(ctx context.Context, userID uint) ([]entity.Match, error) {
	var matches []entity.Match
	res := m.db.WithContext(ctx).
		Where("user_one_id = ? OR user_two_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&matches)
	return matches, res.Error
}

func (m *MatchRepo) UpdateLastMessage(ctx context.Context, matchID uint, preview string) error {
	res := m.db.WithContext(ctx).
		Model(&entity.Match{}).
		Where("id = ?", matchID).
		Updates(map[string]interface{}{
			"last_message": preview,
			"updated_at":   time.Now(),
		})
	return res.Error
}

// Private functions

func (m *MatchRepo) appendSwipedCache(actorID, targetID uint) {
	key := swipedKey(actorID)

	exists, err := m.rdb.Exists(key).Result()
	if err != nil || exists == 0 {
		// Cache not warm; next SwipedTargetIDs call rebuilds it from the DB.
		return
	}

	if err := m.rdb.SAdd(key, targetID).Err(); err != nil {
		log.Println("error updating swiped cache:", err)
	}
}

func swipedKey(actorID uint) string {
	return "user:" + strconv.FormatUint(uint64(actorID), 10) + ":swiped"
}

func cacheTTL() time.Duration {
	return 24 * time.Hour
}
