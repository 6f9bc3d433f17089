package repository

import (
	quotesRepo "zipsea/database/repository/quotes"
)

// Re-export the QuoteRepository interface and constructors.
type QuoteRepository = quotesRepo.QuoteRepository

var NewMongoQuoteRepo = quotesRepo.NewMongoQuoteRepo

var ErrQuoteNotFound = quotesRepo.ErrNotFound
