// Package oapi holds the v2 API transport models and route registration.
package oapi

import "time"

// ErrorResponseErrorCode enumerates machine readable error codes.
type ErrorResponseErrorCode string

const (
	UNAUTHORIZED   ErrorResponseErrorCode = "UNAUTHORIZED"
	SYSTEMNOTFOUND ErrorResponseErrorCode = "SYSTEM_NOT_FOUND"
	MEMBERNOTFOUND ErrorResponseErrorCode = "MEMBER_NOT_FOUND"
	GROUPNOTFOUND  ErrorResponseErrorCode = "GROUP_NOT_FOUND"
	NOTIMPLEMENTED ErrorResponseErrorCode = "NOT_IMPLEMENTED"
	INTERNAL       ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// PrivacyLevel defines model for PrivacyLevel.
type PrivacyLevel string

// SystemPrivacy is only present for the owning system.
type SystemPrivacy struct {
	DescriptionPrivacy PrivacyLevel `json:"description_privacy"`
	MemberListPrivacy  PrivacyLevel `json:"member_list_privacy"`
}

// System defines model for System.
type System struct {
	Id          string         `json:"id"`
	Uuid        string         `json:"uuid"`
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Tag         *string        `json:"tag"`
	AvatarUrl   *string        `json:"avatar_url"`
	Created     *time.Time     `json:"created,omitempty"`
	Privacy     *SystemPrivacy `json:"privacy,omitempty"`
}

// MemberPrivacy is only present for the owning system.
type MemberPrivacy struct {
	Visibility PrivacyLevel `json:"visibility"`
}

// Member defines model for Member.
type Member struct {
	Id          string         `json:"id"`
	Uuid        string         `json:"uuid"`
	Name        string         `json:"name"`
	DisplayName *string        `json:"display_name"`
	Pronouns    *string        `json:"pronouns"`
	Description *string        `json:"description"`
	Created     *time.Time     `json:"created,omitempty"`
	Privacy     *MemberPrivacy `json:"privacy,omitempty"`
}

// GroupPrivacy is only present for the owning system.
type GroupPrivacy struct {
	Visibility PrivacyLevel `json:"visibility"`
}

// Group defines model for Group.
type Group struct {
	Id          string        `json:"id"`
	Uuid        string        `json:"uuid"`
	Name        string        `json:"name"`
	DisplayName *string       `json:"display_name"`
	Description *string       `json:"description"`
	Created     *time.Time    `json:"created,omitempty"`
	Privacy     *GroupPrivacy `json:"privacy,omitempty"`
}
