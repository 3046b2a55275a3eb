package display

import (
	"fmt"
	"io"

	"github.com/backmassage/stemsweep/internal/term"
)

const banner = `     _                                              
 ___| |_ ___ _ __ ___  _____      _____  ___ _ __  
/ __| __/ _ \ '_ ` + "`" + ` _ \/ __\ \ /\ / / _ \/ _ \ '_ \ 
\__ \ ||  __/ | | | | \__ \\ V  V /  __/  __/ |_) |
|___/\__\___|_| |_| |_|___/ \_/\_/ \___|\___| .__/ 
                                            |_|    
`

// PrintBanner writes the ASCII art banner to w; magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta.Sprint(banner))
	fmt.Fprintln(w)
}
