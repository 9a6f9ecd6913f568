package dto

import (
	"time"

	"github.com/spec-kit/admin-panel/internal/domain"
)

// BasicUserInfo is the listing projection of an account.
type BasicUserInfo struct {
	ID       string      `json:"id"`
	UserName string      `json:"userName"`
	Email    string      `json:"email"`
	Bio      string      `json:"bio"`
	Role     domain.Role `json:"role"`
}

// ClientUserInfo is the full client-facing projection of an account.
type ClientUserInfo struct {
	ID        string      `json:"id"`
	UserName  string      `json:"userName"`
	Email     string      `json:"email"`
	Bio       string      `json:"bio"`
	Role      domain.Role `json:"role"`
	RealName  string      `json:"realName"`
	Phone     string      `json:"phone"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// UpdateUserRequest is the partial-field patch body. Absent fields leave the
// stored values unchanged.
type UpdateUserRequest struct {
	UserName *string      `json:"userName"`
	Email    *string      `json:"email"`
	Bio      *string      `json:"bio"`
	Role     *domain.Role `json:"role"`
	RealName *string      `json:"realName"`
	Phone    *string      `json:"phone"`
}

// TeamInfo is the team projection; the member roster is reduced to a count.
type TeamInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatarUrl"`
	Locked      bool   `json:"locked"`
	MemberCount int    `json:"memberCount"`
}

// LogEntryInfo is one audit log record.
type LogEntryInfo struct {
	Time     time.Time       `json:"time"`
	Level    domain.LogLevel `json:"level"`
	Actor    string          `json:"actor"`
	RemoteIP string          `json:"ip,omitempty"`
	Message  string          `json:"msg"`
}

// FileRecordInfo is file metadata.
type FileRecordInfo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SizeBytes  int64     `json:"size"`
	StorageKey string    `json:"storageKey"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// FromUser builds the listing projection.
func FromUser(user *domain.User) BasicUserInfo {
	return BasicUserInfo{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		Bio:      user.Bio,
		Role:     user.Role,
	}
}

// FromUserFull builds the full projection.
func FromUserFull(user *domain.User) ClientUserInfo {
	return ClientUserInfo{
		ID:        user.ID,
		UserName:  user.UserName,
		Email:     user.Email,
		Bio:       user.Bio,
		Role:      user.Role,
		RealName:  user.RealName,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// FromTeam builds the team projection.
func FromTeam(team *domain.Team) TeamInfo {
	return TeamInfo{
		ID:          team.ID,
		Name:        team.Name,
		Bio:         team.Bio,
		AvatarURL:   team.AvatarURL,
		Locked:      team.Locked,
		MemberCount: len(team.MemberIDs),
	}
}

// FromLogEntry builds the log projection.
func FromLogEntry(entry *domain.LogEntry) LogEntryInfo {
	return LogEntryInfo{
		Time:     entry.Time,
		Level:    entry.Level,
		Actor:    entry.Actor,
		RemoteIP: entry.RemoteIP,
		Message:  entry.Message,
	}
}

// FromFileRecord builds the file projection.
func FromFileRecord(record *domain.FileRecord) FileRecordInfo {
	return FileRecordInfo{
		ID:         record.ID,
		Name:       record.Name,
		SizeBytes:  record.SizeBytes,
		StorageKey: record.StorageKey,
		UploadedAt: record.UploadedAt,
	}
}
