// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive vault shell.
//
// The shell is a thin line-oriented front end over the session service: it
// parses commands, prompts for passwords and prints results. All vault
// state lives in the session.
package client
