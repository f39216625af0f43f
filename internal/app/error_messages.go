// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the client-facing message strings of the journal API.
//
// Every route answers a failure it cannot classify with its own generic
// message, so driver or storage details never reach the client. Keeping the
// wording here keeps it identical across the handlers, the API client tests
// and the logs.
package app

// Generic failure messages, one per route.
const (
	MsgRegisterFailed  = "Failed to register"
	MsgLoginFailed     = "Failed to log in"
	MsgCreateFailed    = "Failed to create mood entry"
	MsgMonthlyFailed   = "Failed to get monthly summary"
	MsgUpdateFailed    = "Failed to update mood entry"
	MsgDeleteFailed    = "Failed to delete mood entry"
	MsgStatsFailed     = "Failed to get statistics"
	MsgDashboardFailed = "Failed to get dashboard data"
	MsgSuggestFailed   = "Failed to get suggestions"
	MsgShareFailed     = "Failed to share"
	MsgUnshareFailed   = "Failed to disable sharing"
	MsgSharedFailed    = "Failed to get shared moods"
	MsgPublicFailed    = "Failed to get mood board"
)

// Acknowledgements.
const (
	MsgDeleted         = "Mood entry deleted"
	MsgSharingDisabled = "Sharing disabled"
)
