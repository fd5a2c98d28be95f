package textutil

import (
	"regexp"
	"sort"
	"strings"
)

var (
	wordRe = regexp.MustCompile(`\w+`)
	urlRe  = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\\(\\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)
)

// Truncate обрезает текст до limit рун по последнему пробелу и добавляет
// многоточие. Текст короче лимита возвращается как есть. Если в пределах
// лимита нет ни одного пробела, режем жёстко по лимиту.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	cut := string(runes[:limit])
	if i := strings.LastIndex(cut, " "); i >= 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// WordCount — слово и число его вхождений.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopWords токенизует тексты по \w+, приводит к нижнему регистру и
// возвращает не более n самых частых слов по убыванию счётчика.
// При равных счётчиках раньше идёт слово, встретившееся первым.
func TopWords(texts []string, n int) []WordCount {
	counts := make(map[string]int)
	var order []string
	firstSeen := make(map[string]int)

	for _, text := range texts {
		for _, w := range wordRe.FindAllString(text, -1) {
			w = strings.ToLower(w)
			if _, ok := counts[w]; !ok {
				firstSeen[w] = len(order)
				order = append(order, w)
			}
			counts[w]++
		}
	}

	words := make([]string, len(order))
	copy(words, order)
	sort.SliceStable(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return firstSeen[words[i]] < firstSeen[words[j]]
	})

	if len(words) > n {
		words = words[:n]
	}
	top := make([]WordCount, 0, len(words))
	for _, w := range words {
		top = append(top, WordCount{Word: w, Count: counts[w]})
	}
	return top
}

// ExtractURLs возвращает все непересекающиеся http/https URL в порядке
// появления. Пустой текст или отсутствие ссылок — пустой срез, не nil.
func ExtractURLs(s string) []string {
	urls := urlRe.FindAllString(s, -1)
	if urls == nil {
		return []string{}
	}
	return urls
}
