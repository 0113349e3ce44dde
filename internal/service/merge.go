package service

// Reconciliation used during backup restoration. Unlike append, a collision
// is an update, not a rejection: the same word restored from another device
// may carry a different id, and must land on the existing record instead of
// duplicating it.

import (
	"github.com/anvy2024/Duolingo-sub000/internal/models"
)

// reconcileWords folds incoming records into existing ones. Resolution order
// per incoming record:
//  1. id match: overwrite that record in place, id kept. If the incoming
//     target also collides with a different existing record, that record
//     folds into the id match and is dropped.
//  2. normalized-target match: overwrite in place, but keep the EXISTING id,
//     so ids referenced elsewhere (list identity, cached state) stay valid.
//  3. otherwise append.
//
// After the fold no two records share an id or a normalized target, and the
// mastered/favorite exclusivity holds (mastered wins on conflicting input).
func reconcileWords(existing, incoming []models.Word) []models.Word {
	merged := make([]models.Word, len(existing))
	copy(merged, existing)

	byID := make(map[string]int, len(merged))
	byTarget := make(map[string]int, len(merged))
	for i, word := range merged {
		byID[word.ID] = i
		byTarget[models.NormalizeTarget(word.Target)] = i
	}

	dropped := make(map[int]bool)

	for _, inc := range incoming {
		inc = normalizeFlags(inc)
		key := models.NormalizeTarget(inc.Target)

		if i, ok := byID[inc.ID]; ok {
			delete(byTarget, models.NormalizeTarget(merged[i].Target))
			if j, ok := byTarget[key]; ok && j != i {
				dropped[j] = true
				delete(byID, merged[j].ID)
			}
			merged[i] = inc
			byTarget[key] = i
			continue
		}

		if i, ok := byTarget[key]; ok {
			delete(byID, merged[i].ID)
			inc.ID = merged[i].ID
			merged[i] = inc
			byID[inc.ID] = i
			continue
		}

		merged = append(merged, inc)
		byID[inc.ID] = len(merged) - 1
		byTarget[key] = len(merged) - 1
	}

	return compactWords(merged, dropped)
}

// reconcileArticles is the news twin: id first, then title, with the same
// fold-on-double-collision rule.
func reconcileArticles(existing, incoming []models.Article) []models.Article {
	merged := make([]models.Article, len(existing))
	copy(merged, existing)

	byID := make(map[string]int, len(merged))
	byTitle := make(map[string]int, len(merged))
	for i, a := range merged {
		byID[a.ID] = i
		byTitle[models.NormalizeTitle(a.Title)] = i
	}

	dropped := make(map[int]bool)

	for _, inc := range incoming {
		key := models.NormalizeTitle(inc.Title)

		if i, ok := byID[inc.ID]; ok {
			delete(byTitle, models.NormalizeTitle(merged[i].Title))
			if j, ok := byTitle[key]; ok && j != i {
				dropped[j] = true
				delete(byID, merged[j].ID)
			}
			merged[i] = inc
			byTitle[key] = i
			continue
		}

		if i, ok := byTitle[key]; ok {
			delete(byID, merged[i].ID)
			inc.ID = merged[i].ID
			merged[i] = inc
			byID[inc.ID] = i
			continue
		}

		merged = append(merged, inc)
		byID[inc.ID] = len(merged) - 1
		byTitle[key] = len(merged) - 1
	}

	return compactArticles(merged, dropped)
}

func compactWords(words []models.Word, dropped map[int]bool) []models.Word {
	if len(dropped) == 0 {
		return words
	}
	out := make([]models.Word, 0, len(words)-len(dropped))
	for i, w := range words {
		if !dropped[i] {
			out = append(out, w)
		}
	}
	return out
}

func compactArticles(articles []models.Article, dropped map[int]bool) []models.Article {
	if len(dropped) == 0 {
		return articles
	}
	out := make([]models.Article, 0, len(articles)-len(dropped))
	for i, a := range articles {
		if !dropped[i] {
			out = append(out, a)
		}
	}
	return out
}

func normalizeFlags(w models.Word) models.Word {
	if w.Mastered && w.IsFavorite {
		w.IsFavorite = false
	}
	return w
}
