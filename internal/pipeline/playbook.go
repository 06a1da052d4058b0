package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/strategist-cli/internal/model"
)

// segmentStrategies maps each segment to its outbound strategy lines.
var segmentStrategies = map[model.Segment][]string{
	model.SegmentA1: {
		"- Primary goal: land strategic accounts this quarter.",
		"- Owner: senior AE with leadership sponsor.",
		"- Channels: warm introductions, executive email, targeted events.",
		"- Cadence: personalized 1:1 outreach, weekly touchpoints.",
	},
	model.SegmentA2: {
		"- Primary goal: convert to pipeline within 1-2 quarters.",
		"- Owner: mid-market AE supported by SDR.",
		"- Channels: outbound email sequences, LinkedIn, occasional calls.",
		"- Cadence: 5-7 touch sequence over 3-4 weeks.",
	},
	model.SegmentB1: {
		"- Primary goal: educate and stay top of mind.",
		"- Owner: marketing automation, SDR on low touch.",
		"- Channels: newsletters, product updates, webinars.",
		"- Cadence: monthly value emails, quarterly SDR check-in.",
	},
	model.SegmentB2: {
		"- Primary goal: establish a contact channel; signal is promising.",
		"- Owner: SDR research queue.",
		"- Channels: LinkedIn connection, company switchboard, referrals.",
		"- Cadence: one research pass, then re-evaluate.",
	},
	model.SegmentC0: {
		"- Primary goal: collect more context, do not over-invest.",
		"- Owner: automated flows only.",
		"- Channels: light email touch, retargeting where possible.",
		"- Cadence: occasional newsletter only.",
	},
}

var titleCaser = cases.Title(language.English)

// FormatPlaybook generates a markdown outbound playbook from a completed
// run: a segment overview table plus a strategy block per segment.
func FormatPlaybook(result *Result) string {
	var b strings.Builder

	b.WriteString("# Outbound Playbook\n\n")
	fmt.Fprintf(&b, "Total leads analyzed: **%d**\n\n", len(result.Leads))

	b.WriteString("## Segment Overview\n")
	b.WriteString("| Segment | Lead Count | Avg Strategic Score |\n")
	b.WriteString("|---------|------------|---------------------|\n")
	for _, st := range result.Stats {
		fmt.Fprintf(&b, "| %s | %d | %.1f |\n", st.Segment, st.Count, st.AvgScore)
	}
	b.WriteString("\n")

	industries := topIndustries(result.Leads)

	b.WriteString("## Segment Strategies\n\n")
	for _, st := range result.Stats {
		if st.Count == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", st.Segment)
		fmt.Fprintf(&b, "- Approximate lead volume: **%d**\n", st.Count)
		for _, line := range segmentStrategies[st.Segment] {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(industries) > 0 {
		b.WriteString("## Industry Mix\n")
		for _, ind := range industries {
			fmt.Fprintf(&b, "- %s\n", ind)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Next Best Actions\n")
	b.WriteString("- Export `scored_leads.csv` into your CRM.\n")
	b.WriteString("- Map segment and strategic score into lead fields.\n")
	b.WriteString("- Build campaigns that mirror the segment strategies above.\n")
	b.WriteString("- Review the quality report before going live.\n")

	return b.String()
}

// topIndustries returns the distinct industries in the output, title-cased
// for display, most common first.
func topIndustries(leads []model.SegmentedLead) []string {
	counts := make(map[string]int)
	for _, lead := range leads {
		if lead.Industry == "" {
			continue
		}
		counts[strings.ToLower(lead.Industry)]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	for i, name := range names {
		names[i] = titleCaser.String(name)
	}
	return names
}
