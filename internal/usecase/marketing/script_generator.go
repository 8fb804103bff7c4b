package marketing

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/avassart/reels-ms-go/internal/port"
)

var templateNames = []string{
	"DidYouKnow", "StopUsing", "POV", "ThreeReasons",
	"BeforeAfter", "ThisChanged", "WatchThis",
}

var hooks = map[string][]string{
	"DidYouKnow": {
		"Did you know 80% of devs waste {time} on {task}?",
		"Did you know this mistake costs {number} hours?",
		"Ever wondered why {problem}?",
		"This will change how you {action} forever",
		"I was shocked when I discovered this",
	},
	"StopUsing": {
		"Stop using {old_method} for {task}",
		"Stop wasting time on {bad_practice}",
		"Everyone's wrong about {topic}",
		"Please stop doing this in {year}",
	},
	"POV": {
		"POV: You just discovered {solution} at 2AM",
		"POV: You realize you've been doing it wrong",
		"When you find the perfect {tool}",
		"That feeling when {positive_outcome}",
	},
	"ThreeReasons": {
		"3 reasons devs love {product}",
		"3 things I wish I knew about {topic}",
		"Top 3 mistakes with {task}",
	},
}

var problems = map[string][]string{
	"animations": {
		"Most developers spend 10+ hours/week fighting with CSS animations",
		"Complex animations slow down your site and frustrate users",
		"Writing animations from scratch is time-consuming and error-prone",
	},
	"performance": {
		"Bloated component libraries kill your bundle size",
		"Every extra KB costs you users and conversions",
		"Slow load times = lost revenue",
	},
	"dx": {
		"Re-inventing the wheel on every project wastes countless hours",
		"Copy-pasting Stack Overflow code leads to bugs",
		"Building UI from scratch delays shipping features",
	},
	"design": {
		"Making components look professional takes design skills most devs don't have",
		"Design handoffs are slow and often lead to misunderstandings",
		"Consistency across your app is hard to maintain",
	},
	"productivity": {
		"Context switching between design tools and code kills productivity",
		"Every project starts with the same boring boilerplate",
		"Small UI tweaks turn into multi-hour rabbit holes",
	},
}

var solutions = map[string][]string{
	"animations": {
		"Kinetik UI gives you 100+ professional animations copy-paste ready",
		"Every animation is optimized for 60fps performance",
		"Just drop in a component and it works beautifully",
	},
	"performance": {
		"Kinetik UI is 80% smaller than other animation libraries",
		"Tree-shaking means you only ship what you use",
		"Optimized bundle size = faster load times",
	},
	"dx": {
		"Kinetik UI components work out of the box",
		"No configuration needed - just import and use",
		"TypeScript support for a better developer experience",
	},
	"design": {
		"Every component is designed by professionals",
		"Consistent design system built in",
		"Looks polished without design skills",
	},
	"productivity": {
		"Save 10+ hours per week on UI development",
		"Ship features faster with ready-made components",
		"Focus on your app logic, not UI details",
	},
}

var ctas = []string{
	"Link in bio 👆",
	"Try it free now",
	"Get started today",
	"Join 10,000+ developers",
	"Don't miss out",
	"Save hours this week",
	"Download free",
}

var timeSavedStats = []string{"10 hours/week", "3 hours/day", "40 hours/month"}

var hookStats = []string{"80%", "90%", "70%", "60%", "10x"}

type scriptGeneratorSrv struct {
	rng *rand.Rand
	now port.NowFunc
}

var _ port.ScriptGenerator = (*scriptGeneratorSrv)(nil)

// NewScriptGenerator constructs a ScriptGenerator implementation. The random
// source is injected so tests can pin the selection.
func NewScriptGenerator(rng *rand.Rand, now port.NowFunc) port.ScriptGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &scriptGeneratorSrv{rng: rng, now: now}
}

// Generate assembles a hook, problem, solution and CTA for the requested
// template and topic, along with the voiceover text, subtitle chunks and the
// props the matching composition expects.
func (s *scriptGeneratorSrv) Generate(_ context.Context, req port.ScriptRequest) (*port.Script, error) {
	if !validTemplate(req.Template) {
		return nil, fmt.Errorf("unknown script template %q", req.Template)
	}

	topic := req.Topic
	if _, ok := problems[topic]; !ok {
		topic = "dx"
	}

	hookPool, ok := hooks[req.Template]
	if !ok {
		hookPool = hooks["DidYouKnow"]
	}
	hook := s.fill(s.pick(hookPool))
	problem := s.pick(problems[topic])
	solution := s.pick(solutions[topic])
	cta := s.pick(ctas)

	voiceover := strings.Join([]string{hook, problem, solution, cta}, " ")
	words := len(strings.Fields(voiceover))
	// roughly three spoken words per second, plus breathing room for pauses
	duration := int(math.Ceil(float64(words)/3)) + 2

	props := map[string]any{
		"hook":     hook,
		"problem":  problem,
		"solution": solution,
		"cta":      cta,
	}
	if req.Template == "DidYouKnow" {
		props["stat"] = s.pick(hookStats)
	}

	return &port.Script{
		Hook:              hook,
		Problem:           problem,
		Solution:          solution,
		CTA:               cta,
		EstimatedDuration: duration,
		VoiceoverText:     voiceover,
		SubtitleChunks:    splitIntoChunks(voiceover),
		Props:             props,
	}, nil
}

// GenerateVariants produces count independent scripts from the same request.
func (s *scriptGeneratorSrv) GenerateVariants(ctx context.Context, req port.ScriptRequest, count int) ([]*port.Script, error) {
	if count < 1 || count > 10 {
		return nil, fmt.Errorf("variant count must be between 1 and 10, got %d", count)
	}
	variants := make([]*port.Script, 0, count)
	for i := 0; i < count; i++ {
		script, err := s.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		variants = append(variants, script)
	}
	return variants, nil
}

func (s *scriptGeneratorSrv) Templates() []port.ScriptTemplate {
	templates := make([]port.ScriptTemplate, 0, len(templateNames))
	for _, id := range templateNames {
		templates = append(templates, port.ScriptTemplate{
			ID:       id,
			Name:     spaceCamelCase(id),
			Duration: "10-25 seconds",
		})
	}
	return templates
}

func (s *scriptGeneratorSrv) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

// fill substitutes the placeholder vocabulary into a hook pattern.
func (s *scriptGeneratorSrv) fill(pattern string) string {
	vars := map[string]string{
		"time":             s.pick(timeSavedStats),
		"task":             "repetitive UI work",
		"problem":          "your animations are janky",
		"action":           "build UI",
		"solution":         "Kinetik UI",
		"tool":             "component library",
		"positive_outcome": "you find the perfect solution",
		"product":          "Kinetik UI",
		"number":           "10+",
		"old_method":       "vanilla CSS",
		"bad_practice":     "reinventing components",
		"topic":            "UI development",
		"year":             strconv.Itoa(s.now().Year()),
	}
	out := pattern
	for key, value := range vars {
		out = strings.Replace(out, "{"+key+"}", value, 1)
	}
	return out
}

func validTemplate(name string) bool {
	for _, t := range templateNames {
		if t == name {
			return true
		}
	}
	return false
}

var sentenceEnd = regexp.MustCompile(`([.!?])\s+`)

// splitIntoChunks breaks the voiceover text at sentence boundaries and then
// at commas and "and", producing subtitle-sized pieces with natural pauses.
func splitIntoChunks(text string) []string {
	sentences := strings.Split(sentenceEnd.ReplaceAllString(text, "$1\n"), "\n")
	var chunks []string
	for _, sentence := range sentences {
		parts := strings.Split(strings.ReplaceAll(sentence, ", ", ",\n"), "\n")
		for _, part := range parts {
			for _, piece := range strings.Split(strings.ReplaceAll(part, " and ", " and\n"), "\n") {
				if piece = strings.TrimSpace(piece); piece != "" {
					chunks = append(chunks, piece)
				}
			}
		}
	}
	return chunks
}

func spaceCamelCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
