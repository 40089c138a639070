// Package id implements the checksum and decomposition engine for national
// identity-card numbers.
//
// This package contains the following main pieces:
//   - Digits: conversion of numeric strings into digit arrays
//   - WeightedSum / CheckSymbol: the CN mod-11 checksum engine
//   - Identity: the decoded, validated Mainland China ID value object
//   - Upgrade: the one-way CN-15 to CN-18 transform
//   - Detect / Validate / Check: jurisdiction dispatch over CN/HK/MO/TW
//
// Design decision: all five jurisdictions live in one package behind a
// Jurisdiction enum rather than one package per jurisdiction. The validators
// share the normalize-then-checksum flow and the error taxonomy; splitting
// them would force same-named Validate functions across packages and an
// awkward dispatch layer on top.
//
// Validation is total: any string is accepted as input and produces a
// verdict. Malformed input is reported as a value (false, or a typed error
// from Check), never as a panic.
package id
