// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault holds the in-memory working copy of a user's credentials
// and converts it to and from the sealed on-disk blob.
//
// The package has three parts:
//
//   - [CredStore] is the working store. Secrets inside it are always AEAD
//     envelopes; plaintext only exists for the duration of one Add, Update
//     or DecryptSecret call.
//   - [Codec] turns a CredStore into a deterministic JSON document and back,
//     tolerating documents written by older versions.
//   - [Container] seals that document into a single
//     [nonce][tag][ciphertext] blob and persists it through a
//     [store.VaultFileStorage].
//
// None of the types own the master key. Callers lend it as a []byte for
// one call at a time.
package vault
