// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source resolves container document locations to bytes. A location
// is a local file path, "-" for stdin, or an s3://bucket/key URL fetched
// with the AWS SDK using the ambient credential chain (AWS_PROFILE, shared
// config, env, IMDS).
package source
