package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameTaken  = errors.New("username conflict")
)

// Position is a stored maze cell.
type Position struct {
	Row int `bson:"row" json:"row"`
	Col int `bson:"col" json:"col"`
}

// SolveRecord is a solved maze kept in a user's history.
type SolveRecord struct {
	ID            uuid.UUID  `bson:"_id" json:"id"`
	OwnerID       uuid.UUID  `bson:"ownerId" json:"owner_id"`
	Name          string     `bson:"name" json:"name"`
	Digest        string     `bson:"digest" json:"digest"`
	Maze          string     `bson:"maze" json:"maze"`
	Strategy      string     `bson:"strategy" json:"strategy"`
	Actions       []string   `bson:"actions" json:"actions"`
	Cells         []Position `bson:"cells" json:"cells"`
	ExploredCount int        `bson:"exploredCount" json:"explored_count"`
	CreatedAt     time.Time  `bson:"createdAt" json:"created_at"`
}

// MazeDigest identifies a maze by the SHA-256 of its text.
func MazeDigest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
