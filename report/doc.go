// SPDX-License-Identifier: MIT

// Package report turns a rank.Report into display artifacts: an optional
// warning, a list of summary lines and exactly three panels (design matrix,
// cross-product, inverse or the message that replaces it).
//
// Format is pure: it performs no I/O and reads nothing but its arguments.
package report
