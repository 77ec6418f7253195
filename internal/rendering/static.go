package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

const responsiveCSS = `*{margin:0;padding:0;box-sizing:border-box;}
html{scroll-behavior:smooth;}
.desktop-nav{display:flex;}
.mobile-menu-btn{display:none;}
.mobile-menu{display:none;}
@media(max-width:768px){.desktop-nav{display:none !important;}.mobile-menu-btn{display:block !important;}}
@media(min-width:769px){.mobile-menu-btn{display:none !important;}.mobile-menu{display:none !important;}}
.cursor{animation:blink 1s step-end infinite;}
@keyframes blink{50%{opacity:0;}}`

// staticScript wires navigation clicks, the mobile menu and the scroll spy
var staticScript = fmt.Sprintf(`(function(){
var root=document.querySelector('.portfolio');
if(!root)return;
var color=root.getAttribute('data-nav-color'),activeColor=root.getAttribute('data-nav-active');
var menu=root.querySelector('.mobile-menu'),btn=root.querySelector('.mobile-menu-btn');
var links=root.querySelectorAll('[data-target]');
var ids=[];
links.forEach(function(l){var id=l.getAttribute('data-target');if(ids.indexOf(id)<0)ids.push(id);});
function setActive(id){links.forEach(function(l){var on=l.getAttribute('data-target')===id;l.classList.toggle('active',on);l.style.color=on?activeColor:color;if(on){l.setAttribute('aria-current','page');}else{l.removeAttribute('aria-current');}});}
function setMenu(open){if(!menu)return;menu.style.display=open?'block':'';if(btn)btn.setAttribute('aria-expanded',open?'true':'false');}
links.forEach(function(l){l.addEventListener('click',function(){var id=l.getAttribute('data-target');var el=document.getElementById(id);if(el)el.scrollIntoView({behavior:'smooth'});setActive(id);setMenu(false);});});
if(btn)btn.addEventListener('click',function(){setMenu(!(menu&&menu.style.display==='block'));});
window.addEventListener('scroll',function(){var current=null;ids.forEach(function(id){var el=document.getElementById(id);if(el&&el.getBoundingClientRect().top<=%d)current=id;});if(current)setActive(current);});
})();`, ScrollThreshold)

// Static renders self-contained portfolio documents for publishing
type Static struct {
	Clock Clock
}

// NewStatic creates a static renderer. A nil clock uses the system clock.
func NewStatic(clock Clock) *Static {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Static{Clock: clock}
}

// Render returns a complete HTML document for the resume in the given theme.
// Unknown template ids use the default theme.
func (r *Static) Render(m *types.ResumeModel, templateID string) (string, error) {
	if m == nil {
		return "", &RenderError{Message: "resume is nil"}
	}
	theme := LookupTheme(templateID)
	v := newPortfolioView(m, theme, r.Clock)

	doc := Fragment(
		Raw("<!DOCTYPE html>\n"),
		El("html", A("lang", "en"),
			El("head", nil,
				El("meta", A("charset", "UTF-8")),
				El("meta", A("name", "viewport", "content", "width=device-width, initial-scale=1.0")),
				El("title", nil, Text(v.name+" — Portfolio")),
				El("style", nil, Raw(responsiveCSS)),
			),
			El("body", A("style", "margin:0;"+theme.PageStyle),
				portfolioRoot(v, NewNavState(v.nav)),
				El("script", nil, Raw(staticScript)),
			),
		),
	)

	var sb strings.Builder
	if err := Render(&sb, doc); err != nil {
		return "", &RenderError{Message: "failed to write static portfolio", Cause: err}
	}
	return sb.String(), nil
}
