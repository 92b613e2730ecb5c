// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the vault shell.
//
// Session errors are mapped to these messages in one place so the wording
// stays consistent across commands.
package app

const (
	// MsgInvalidDataProvided is shown when a command argument or a
	// registration field fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is shown for an unknown user and for a wrong
	// master password alike.
	MsgInvalidLoginPassword = "invalid username or master password"

	// MsgLoginAlreadyExists is shown when registration picks a taken
	// username.
	MsgLoginAlreadyExists = "username already exists"

	// MsgVaultLocked is shown when an entry command runs without an
	// unlocked vault.
	MsgVaultLocked = "vault is locked, run unlock <username> first"

	// MsgAlreadyUnlocked is shown when unlock runs on an unlocked vault.
	MsgAlreadyUnlocked = "vault is already unlocked, lock it first"

	// MsgUnlockSuperseded is shown when a lock or another unlock overtook a
	// pending unlock.
	MsgUnlockSuperseded = "unlock was cancelled by a newer request"

	// MsgVaultTampered is shown when the vault file fails authentication. It
	// was modified or damaged on disk.
	MsgVaultTampered = "vault file failed integrity check, it may have been modified or damaged"

	// MsgDataNotFound is shown when the requested entry id does not exist.
	MsgDataNotFound = "entry not found"

	// MsgSaveFailed is shown when the vault could not be written. When it
	// comes from lock or logout the vault was purged regardless.
	MsgSaveFailed = "vault could not be saved, recent changes may be lost"

	// MsgInvalidImport is shown when an import file is malformed or has an
	// invalid record.
	MsgInvalidImport = "import file is invalid"

	// MsgCommandFailed is shown for unexpected failures. The details are
	// written to the log only.
	MsgCommandFailed = "command failed, see the log for details"
)
