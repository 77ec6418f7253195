package rendering

import "strings"

// BrandStyle selects how the header shows the owner's name
type BrandStyle int

// Brand styles
const (
	BrandNone BrandStyle = iota
	BrandFirstName
	BrandSpaced
	BrandSparkle
	BrandPrompt
)

// HeroLayout selects the arrangement of the landing section
type HeroLayout int

// Hero layouts
const (
	HeroCentered HeroLayout = iota
	HeroSplit
)

// Headings are the visible section titles of a theme
type Headings struct {
	Skills     string
	Experience string
	Education  string
	Projects   string
	Contact    string
}

// Theme is the full token set of one portfolio variant. Every variant is
// rendered by the same builder; only these values differ.
type Theme struct {
	ID          string
	Name        string
	Description string
	Color       string
	Background  string

	FontStack    string
	PageStyle    string
	TextColor    string
	MaxWidth     int
	HeaderStyle  string
	HeaderHeight int
	Brand        BrandStyle
	BrandColor   string
	NavColor     string
	NavActive    string
	NavRadius    string
	MenuStyle    string

	Hero           HeroLayout
	Greeting       string
	HeroSkillLimit int
	NameColor      string
	NameSize       int
	TitleColor     string
	MutedColor     string
	BodyColor      string

	AvatarSize   int
	AvatarRadius string
	AvatarStyle  string

	HeadingStyle   string
	Headings       Headings
	Terminal       bool
	EducationFirst bool
	Timeline       bool

	CardStyle         string
	EducationCard     string
	DateColor         string
	CompanyColor      string
	BadgeStyle        string
	TagStyle          string
	PlainTechnologies bool
	ProjectNameColor  string
	LinkColor         string
	ProjectLinkLabel  string
	ButtonStyle       string
	AltButtonStyle    string

	FooterStyle  string
	FooterPrefix string
	DefaultRole  string
}

// NavLabel returns the label shown for a nav item in this theme
func (t *Theme) NavLabel(label string) string {
	if t.Terminal {
		return "~/" + strings.ToLower(label)
	}
	return label
}

// Role returns the job title or the theme's default role
func (t *Theme) Role(jobTitle string) string {
	if jobTitle == "" {
		return t.DefaultRole
	}
	return jobTitle
}

var classicTheme = Theme{
	ID:          "classic",
	Name:        "Classic",
	Description: "Warm & Professional",
	Color:       "#ea580c",
	Background:  "#fff7e6",

	FontStack:    "system-ui,-apple-system,sans-serif",
	PageStyle:    "background:linear-gradient(to bottom,#fff7e6,#fff 50%);",
	TextColor:    "#1f2937",
	MaxWidth:     1024,
	HeaderStyle:  "background:#1e293b;box-shadow:0 4px 6px -1px rgba(0,0,0,0.1);",
	HeaderHeight: 64,
	Brand:        BrandNone,
	NavColor:     "#d1d5db",
	NavActive:    "#ea580c",
	NavRadius:    "6px",
	MenuStyle:    "background:#1e293b;padding:8px 12px 12px;",

	Hero:           HeroSplit,
	Greeting:       "Hello, I'm ",
	HeroSkillLimit: 6,
	NameColor:      "#ea580c",
	NameSize:       30,
	TitleColor:     "#4b5563",
	MutedColor:     "#4b5563",
	BodyColor:      "#374151",

	AvatarSize:   160,
	AvatarRadius: "50%",
	AvatarStyle:  "border:4px solid #e5e7eb;background:#f3f4f6;color:#9ca3af;",

	HeadingStyle: "font-size:30px;font-weight:700;color:#1f2937;margin-bottom:32px;text-align:center;",
	Headings: Headings{
		Skills:     "Skills",
		Experience: "Work Experience",
		Education:  "Education",
		Projects:   "My Projects",
		Contact:    "Get In Touch",
	},
	EducationFirst: true,
	Timeline:       true,

	CardStyle:        "position:relative;padding:0 0 32px 24px;border-left:2px solid #cbd5e1;",
	EducationCard:    "position:relative;padding:0 0 32px 24px;border-left:2px solid #cbd5e1;",
	DateColor:        "#2563eb",
	CompanyColor:     "#4b5563",
	BadgeStyle:       "background:#ffedd5;color:#9a3412;font-size:12px;font-weight:600;padding:4px 12px;border-radius:9999px;display:inline-block;",
	TagStyle:         "background:#ffedd5;color:#9a3412;font-size:12px;font-weight:600;padding:4px 12px;border-radius:9999px;",
	ProjectNameColor: "#ea580c",
	LinkColor:        "#4b5563",
	ProjectLinkLabel: "View Project →",
	ButtonStyle:      "padding:10px 16px;background:#2563eb;color:#fff;border-radius:6px;font-weight:700;text-decoration:none;font-size:14px;",
	AltButtonStyle:   "padding:10px 16px;background:#16a34a;color:#fff;border-radius:6px;font-weight:700;text-decoration:none;font-size:14px;",

	FooterStyle: "background:#1f2937;color:#e5e7eb;padding:24px 0;text-align:center;",
}

var darkTheme = Theme{
	ID:          "dark",
	Name:        "Dark",
	Description: "Sleek & Modern",
	Color:       "#38bdf8",
	Background:  "#0f172a",

	FontStack:    "'Inter',system-ui,sans-serif",
	PageStyle:    "background:#0f172a;",
	TextColor:    "#e2e8f0",
	MaxWidth:     1100,
	HeaderStyle:  "background:rgba(15,23,42,0.95);backdrop-filter:blur(12px);border-bottom:1px solid rgba(56,189,248,0.1);",
	HeaderHeight: 64,
	Brand:        BrandFirstName,
	BrandColor:   "#38bdf8",
	NavColor:     "#94a3b8",
	NavActive:    "#38bdf8",
	NavRadius:    "8px",
	MenuStyle:    "background:#0f172a;padding:8px 16px 16px;",

	Hero:       HeroCentered,
	NameColor:  "#f1f5f9",
	NameSize:   42,
	TitleColor: "#38bdf8",
	MutedColor: "#64748b",
	BodyColor:  "#94a3b8",

	AvatarSize:   140,
	AvatarRadius: "50%",
	AvatarStyle:  "border:3px solid #38bdf8;background:#1e293b;color:#38bdf8;",

	HeadingStyle: "font-size:28px;font-weight:700;color:#f1f5f9;margin-bottom:32px;text-align:center;",
	Headings: Headings{
		Skills:     "Skills",
		Experience: "Experience",
		Education:  "Education",
		Projects:   "Projects",
		Contact:    "Contact",
	},

	CardStyle:        "background:rgba(30,41,59,0.5);border-radius:16px;padding:24px;border:1px solid rgba(56,189,248,0.08);border-left:3px solid #38bdf8;margin-bottom:16px;",
	EducationCard:    "background:rgba(30,41,59,0.5);border-radius:16px;padding:24px;border-left:3px solid #818cf8;margin-bottom:16px;",
	DateColor:        "#38bdf8",
	CompanyColor:     "#64748b",
	BadgeStyle:       "padding:10px 20px;background:rgba(30,41,59,0.6);border:1px solid rgba(56,189,248,0.15);border-radius:10px;color:#cbd5e1;font-size:14px;display:inline-block;",
	TagStyle:         "background:rgba(56,189,248,0.1);color:#38bdf8;padding:3px 10px;border-radius:6px;font-size:12px;",
	ProjectNameColor: "#38bdf8",
	LinkColor:        "#38bdf8",
	ProjectLinkLabel: "View →",
	ButtonStyle:      "padding:10px 20px;background:#38bdf8;border-radius:8px;color:#0f172a;text-decoration:none;font-size:14px;font-weight:700;",
	AltButtonStyle:   "padding:10px 20px;background:rgba(56,189,248,0.1);border:1px solid rgba(56,189,248,0.3);border-radius:8px;color:#38bdf8;text-decoration:none;font-size:14px;",

	FooterStyle: "border-top:1px solid rgba(56,189,248,0.1);padding:24px 0;text-align:center;color:#475569;font-size:14px;",
}

var minimalTheme = Theme{
	ID:          "minimal",
	Name:        "Minimal",
	Description: "Clean & Elegant",
	Color:       "#666",
	Background:  "#fafafa",

	FontStack:    "Georgia,'Times New Roman',serif",
	PageStyle:    "background:#fafafa;",
	TextColor:    "#2d2d2d",
	MaxWidth:     800,
	HeaderStyle:  "background:#fff;border-bottom:1px solid #eee;",
	HeaderHeight: 56,
	Brand:        BrandSpaced,
	BrandColor:   "#111",
	NavColor:     "#888",
	NavActive:    "#111",
	NavRadius:    "0",
	MenuStyle:    "background:#fff;padding:8px 24px 16px;border-top:1px solid #eee;",

	Hero:       HeroCentered,
	NameColor:  "#2d2d2d",
	NameSize:   36,
	TitleColor: "#888",
	MutedColor: "#888",
	BodyColor:  "#666",

	AvatarSize:   120,
	AvatarRadius: "50%",
	AvatarStyle:  "background:#f0f0f0;color:#999;letter-spacing:2px;",

	HeadingStyle: "font-size:14px;color:#888;margin-bottom:24px;text-align:center;letter-spacing:3px;text-transform:uppercase;font-weight:400;",
	Headings: Headings{
		Skills:     "Expertise",
		Experience: "Experience",
		Education:  "Education",
		Projects:   "Selected Work",
		Contact:    "Contact",
	},

	CardStyle:         "margin-bottom:32px;padding-bottom:32px;border-bottom:1px solid #f0f0f0;",
	EducationCard:     "margin-bottom:24px;",
	DateColor:         "#aaa",
	CompanyColor:      "#888",
	BadgeStyle:        "padding:6px 16px;border:1px solid #ddd;border-radius:2px;font-size:13px;color:#555;display:inline-block;",
	TagStyle:          "color:#aaa;font-size:13px;",
	PlainTechnologies: true,
	ProjectNameColor:  "#2d2d2d",
	LinkColor:         "#2d2d2d",
	ProjectLinkLabel:  "View Project",
	ButtonStyle:       "color:#2d2d2d;text-decoration:none;font-size:14px;border-bottom:1px solid #ccc;padding-bottom:2px;",
	AltButtonStyle:    "color:#2d2d2d;text-decoration:none;font-size:14px;border-bottom:1px solid #ccc;padding-bottom:2px;",

	FooterStyle: "border-top:1px solid #eee;padding:24px 0;text-align:center;color:#ccc;font-size:12px;letter-spacing:1px;",
}

var gradientTheme = Theme{
	ID:          "gradient",
	Name:        "Gradient",
	Description: "Bold & Vibrant",
	Color:       "#7c3aed",
	Background:  "#fdf2f8",

	FontStack:    "'Segoe UI',system-ui,sans-serif",
	PageStyle:    "background:#fdf2f8;",
	TextColor:    "#1e1b4b",
	MaxWidth:     1100,
	HeaderStyle:  "background:linear-gradient(135deg,#7c3aed,#db2777);box-shadow:0 4px 20px rgba(124,58,237,0.3);",
	HeaderHeight: 64,
	Brand:        BrandSparkle,
	BrandColor:   "#fff",
	NavColor:     "#fff",
	NavActive:    "#fde68a",
	NavRadius:    "20px",
	MenuStyle:    "background:linear-gradient(135deg,#7c3aed,#db2777);padding:8px 24px 16px;",

	Hero:       HeroCentered,
	NameColor:  "#7c3aed",
	NameSize:   44,
	TitleColor: "#7c3aed",
	MutedColor: "#7c3aed",
	BodyColor:  "#64748b",

	AvatarSize:   150,
	AvatarRadius: "24px",
	AvatarStyle:  "background:linear-gradient(135deg,#7c3aed,#db2777);color:#fff;box-shadow:0 12px 40px rgba(124,58,237,0.25);",

	HeadingStyle: "font-size:28px;font-weight:800;margin-bottom:32px;text-align:center;color:#7c3aed;",
	Headings: Headings{
		Skills:     "Skills",
		Experience: "Experience",
		Education:  "Education",
		Projects:   "Projects",
		Contact:    "Let's Connect",
	},

	CardStyle:        "background:#fff;border-radius:20px;padding:28px;box-shadow:0 4px 20px rgba(124,58,237,0.08);border-left:4px solid #7c3aed;margin-bottom:20px;",
	EducationCard:    "background:#fff;border-radius:20px;padding:24px;box-shadow:0 4px 20px rgba(219,39,119,0.06);margin-bottom:16px;",
	DateColor:        "#db2777",
	CompanyColor:     "#7c3aed",
	BadgeStyle:       "padding:8px 20px;background:#fff;border-radius:20px;font-size:14px;font-weight:600;color:#7c3aed;box-shadow:0 2px 10px rgba(124,58,237,0.1);display:inline-block;",
	TagStyle:         "background:rgba(124,58,237,0.08);color:#7c3aed;padding:4px 12px;border-radius:12px;font-size:12px;font-weight:600;",
	ProjectNameColor: "#1e1b4b",
	LinkColor:        "#db2777",
	ProjectLinkLabel: "View Project →",
	ButtonStyle:      "padding:10px 24px;background:#fff;color:#7c3aed;border-radius:24px;text-decoration:none;font-size:14px;font-weight:600;border:2px solid #7c3aed;",
	AltButtonStyle:   "padding:10px 24px;background:linear-gradient(135deg,#7c3aed,#db2777);color:#fff;border-radius:24px;text-decoration:none;font-size:14px;font-weight:600;",

	FooterStyle: "background:linear-gradient(135deg,#7c3aed,#db2777);padding:24px 0;text-align:center;color:rgba(255,255,255,0.8);font-size:14px;",
}

var developerTheme = Theme{
	ID:          "developer",
	Name:        "Developer",
	Description: "Terminal Style",
	Color:       "#4ade80",
	Background:  "#0a0a0a",

	FontStack:    "'Cascadia Code','Fira Code','Courier New',monospace",
	PageStyle:    "background:#0a0a0a;",
	TextColor:    "#e0e0e0",
	MaxWidth:     1000,
	HeaderStyle:  "background:#111;border-bottom:1px solid #1a1a1a;",
	HeaderHeight: 52,
	Brand:        BrandPrompt,
	BrandColor:   "#4ade80",
	NavColor:     "#666",
	NavActive:    "#4ade80",
	NavRadius:    "4px",
	MenuStyle:    "background:#111;padding:4px 20px 12px;",

	Hero:       HeroSplit,
	Greeting:   "// Hello world, I am",
	NameColor:  "#fff",
	NameSize:   32,
	TitleColor: "#4ade80",
	MutedColor: "#666",
	BodyColor:  "#888",

	AvatarSize:   120,
	AvatarRadius: "8px",
	AvatarStyle:  "border:2px solid #4ade80;background:#111;color:#4ade80;",

	HeadingStyle: "font-size:14px;color:#666;margin-bottom:24px;font-weight:400;",
	Headings: Headings{
		Skills:     "const skills = [",
		Experience: "experience --list",
		Education:  "education --list",
		Projects:   "ls ~/projects",
		Contact:    "contact --info",
	},
	Terminal: true,

	CardStyle:        "background:#111;border-radius:8px;padding:20px;border-left:3px solid #4ade80;margin-bottom:12px;",
	EducationCard:    "background:#111;border-radius:8px;padding:20px;border-left:3px solid #c084fc;margin-bottom:12px;",
	DateColor:        "#4ade80",
	CompanyColor:     "#c084fc",
	BadgeStyle:       "padding:4px 12px;background:#1a1a1a;border:1px solid #2a2a2a;border-radius:4px;font-size:13px;color:#fbbf24;display:inline-block;",
	TagStyle:         "background:#1a1a1a;color:#fbbf24;padding:2px 8px;border-radius:4px;font-size:11px;",
	ProjectNameColor: "#4ade80",
	LinkColor:        "#4ade80",
	ProjectLinkLabel: "$ open ",
	ButtonStyle:      "padding:6px 14px;background:#1a1a1a;border:1px solid #333;border-radius:4px;color:#60a5fa;text-decoration:none;font-size:13px;",
	AltButtonStyle:   "padding:6px 14px;background:#1a1a1a;border:1px solid #333;border-radius:4px;color:#4ade80;text-decoration:none;font-size:13px;",

	FooterStyle:  "border-top:1px solid #1a1a1a;padding:20px 0;text-align:center;color:#333;font-size:12px;",
	FooterPrefix: "// ",
	DefaultRole:  "Developer",
}
