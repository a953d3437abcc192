// Package main is the entry point for the pointproc command.
//
// pointproc generates synthetic Poisson spike trains and reports how
// irregular they are:
//
//	Generator (Poisson trains) → Event Stream → LV / Fano factor / CV → Report
//
// Commands:
//   - run: generate and analyze in one step
//   - generate: write a stream as json, yaml or toml
//   - analyze: report on a stream written by generate
//   - version: print build information
//
// Configuration:
//   - Environment variables (POINTPROC_*, LOG_LEVEL, LOG_DEV)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# 100 processes x 1000 events, fail if any measure strays from 1
//	pointproc run --seed 42 --strict
//
//	# Save a stream and analyze it later with wider windows
//	pointproc generate --seed 7 -o stream.yaml
//	pointproc analyze stream.yaml --window 1
package main
