package search

import "errors"

var (
	// ErrQueryRequired - Query rỗng
	ErrQueryRequired = errors.New("search: query is required")

	// ErrQueryTooLong - Query text quá dài (> 1000 chars)
	ErrQueryTooLong = errors.New("search: query too long")

	// ErrOracleFailed - Gọi LLM thất bại hoặc filter mode trả về JSON hỏng
	ErrOracleFailed = errors.New("search: relevance oracle failed")

	// ErrSearchFailed - Truy vấn candidate/profile thất bại
	ErrSearchFailed = errors.New("search: search failed")
)
