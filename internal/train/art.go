package train

import "strings"

// Art is stored row by row so that every row's escapes are easy to check.

var d51Top = []string{
	"      ====        ________                ___________",
	"  _D _|  |_______/        \\__I_I_____===__|_________|",
	"   |(_)---  |   H\\________/ |   |        =|___ ___|",
	"   /     |  |   H  |  |     |   |         ||_| |_||",
	"  |      |  |   H  |__--------------------| [___] |",
	"  | ________|___H__/__|_____/[][]~\\_______|       |",
	"  |/ |   |-----------I_____I [][] []  D   |=======|__",
}

var d51Wheels = [][]string{
	{
		"__/ =| o |=-~~\\  /~~\\  /~~\\  /~~\\ ____Y___________|__",
		" |/-=|___|=    ||    ||    ||    |_____/~\\___/",
		"  \\_/      \\O=====O=====O=====O_/      \\_/",
	},
	{
		"__/ =| o |=-~~\\  /~~\\  /~~\\  /~~\\ ____Y___________|__",
		" |/-=|___|=    ||    ||    ||    |_____/~\\___/",
		"  \\_/      \\_O=====O=====O=====O/      \\_/",
	},
	{
		"__/ =| o |=-~~\\  /~~\\  /~~\\  /~~\\ ____Y___________|__",
		" |/-=|___|=   O=====O=====O=====O|_____/~\\___/",
		"  \\_/      \\__/  \\__/  \\__/  \\__/      \\_/",
	},
	{
		"__/ =| o |=-~O=====O=====O=====O\\ ____Y___________|__",
		" |/-=|___|=    ||    ||    ||    |_____/~\\___/",
		"  \\_/      \\__/  \\__/  \\__/  \\__/      \\_/",
	},
	{
		"__/ =| o |=-O=====O=====O=====O \\ ____Y___________|__",
		" |/-=|___|=    ||    ||    ||    |_____/~\\___/",
		"  \\_/      \\__/  \\__/  \\__/  \\__/      \\_/",
	},
	{
		"__/ =| o |=-~~\\  /~~\\  /~~\\  /~~\\ ____Y___________|__",
		" |/-=|___|=O=====O=====O=====O   |_____/~\\___/",
		"  \\_/      \\__/  \\__/  \\__/  \\__/      \\_/",
	},
}

var smokeFrames = [][]string{
	{
		"                (  ) (@@) (  )  (@)  ()   @   O   @   O   @   O   @   O   @",
		"             (@@@)",
		"         (   )",
		"     (@@@@)",
		"  (    )",
		"",
		"(@@@@)",
	},
	{
		"                (@@) (  ) (@@)  ( )  ()   O   @   O   @   O   @   O   @   O",
		"             (   )",
		"         (@@@)",
		"     (    )",
		"  (@@@@)",
		"",
		"(    )",
	},
}

var c51Top = []string{
	"        ___                                            ",
	"       _|_|_  _     __       __             ___________",
	"    D__/   \\_(_)___|  |__H__|  |_____I_Ii_()|_________|",
	"     | `---'   |:: `--'  H  `--'         |  |___ ___|  ",
	"    +|~~~~~~~~++::~~~~~~~H~~+=====+~~~~~~|~~||_| |_||  ",
	"    ||        | ::       H  +=====+      |  |::  ...|  ",
	"|    | _______|_::-----------------[][]-----|       |  ",
}

var c51Wheels = [][]string{
	{
		"| /~~ ||   |-----/~~~~\\  /[I_____I][][] --|||_______|__",
		"------'|oOo|==[]=-     ||      ||      |  ||=======_|__",
		"/~\\____|___|/~\\_|   O=======O=======O  |__|+-/~\\_|     ",
		"\\_/         \\_/  \\____/  \\____/  \\____/      \\_/       ",
	},
	{
		"| /~~ ||   |-----/~~~~\\  /[I_____I][][] --|||_______|__",
		"------'|oOo|===[]=-    ||      ||      |  ||=======_|__",
		"/~\\____|___|/~\\_|    O=======O=======O |__|+-/~\\_|     ",
		"\\_/         \\_/  \\____/  \\____/  \\____/      \\_/       ",
	},
	{
		"| /~~ ||   |-----/~~~~\\  /[I_____I][][] --|||_______|__",
		"------'|oOo|===[]=- O=======O=======O  |  ||=======_|__",
		"/~\\____|___|/~\\_|      ||      ||      |__|+-/~\\_|     ",
		"\\_/         \\_/  \\____/  \\____/  \\____/      \\_/       ",
	},
	{
		"| /~~ ||   |-----/~~~~\\  /[I_____I][][] --|||_______|__",
		"------'|oOo|==[]=- O=======O=======O   |  ||=======_|__",
		"/~\\____|___|/~\\_|      ||      ||      |__|+-/~\\_|     ",
		"\\_/         \\_/  \\____/  \\____/  \\____/      \\_/       ",
	},
	{
		"| /~~ ||   |-----/~~~~\\  /[I_____I][][] --|||_______|__",
		"------'|oOo|=[]=- O=======O=======O    |  ||=======_|__",
		"/~\\____|___|/~\\_|      ||      ||      |__|+-/~\\_|     ",
		"\\_/         \\_/  \\____/  \\____/  \\____/      \\_/       ",
	},
	{
		"| /~~ ||   |-----/~~~~\\  /[I_____I][][] --|||_______|__",
		"------'|oOo|=[]=-      ||      ||      |  ||=======_|__",
		"/~\\____|___|/~\\_|  O=======O=======O   |__|+-/~\\_|     ",
		"\\_/         \\_/  \\____/  \\____/  \\____/      \\_/       ",
	},
}

var logoTop = []string{
	"     ++      +------ ",
	"     ||      |+-+ |  ",
	"   /---------|| | |  ",
	"  + ========  +-+ |  ",
}

var logoWheels = [][]string{
	{" _|--O========O~\\-+  ", "//// \\_/      \\_/    "},
	{" _|--/O========O\\-+  ", "//// \\_/      \\_/    "},
	{" _|--/~O========O-+  ", "//// \\_/      \\_/    "},
	{" _|--/~\\------/~\\-+  ", "//// \\_O========O    "},
	{" _|--/~\\------/~\\-+  ", "//// \\O========O/    "},
	{" _|--/~\\------/~\\-+  ", "//// O========O_/    "},
}

var logoCoal = []string{
	"____                 ",
	"|   \\@@@@@@@@@@@     ",
	"|    \\@@@@@@@@@@@@@_ ",
	"|                  | ",
	"|__________________| ",
	"   (O)       (O)     ",
}

var logoCar = []string{
	"____________________ ",
	"|  ___ ___ ___ ___ | ",
	"|  |_| |_| |_| |_| | ",
	"|__________________| ",
	"|__________________| ",
	"   (O)        (O)    ",
}

var tramBody = []string{
	" ____________________",
	"|  _   _   _   _   _ |",
	"| |_| |_| |_| |_| |_||",
	"|____________________|",
}

var tramWheels = []string{
	"  (O)            (O) ",
	"  (o)            (o) ",
}

var accidentCries = []string{
	"                                           Help!",
	"                                 Help!",
}

// frames joins per-frame rows into an animation source.
func frames(rows [][]string) string {
	texts := make([]string, len(rows))
	for i, r := range rows {
		texts[i] = strings.Join(r, "\n")
	}
	return strings.Join(texts, "\n\n\n")
}

// stack places head above each tail, producing one frame per tail.
func stack(head []string, tails [][]string) [][]string {
	out := make([][]string, len(tails))
	for i, tail := range tails {
		rows := make([]string, 0, len(head)+len(tail))
		rows = append(rows, head...)
		rows = append(rows, tail...)
		out[i] = rows
	}
	return out
}

// beside concatenates blocks of equal height row by row.
func beside(blocks ...[]string) []string {
	rows := make([]string, len(blocks[0]))
	for _, b := range blocks {
		for i, r := range b {
			rows[i] += r
		}
	}
	return rows
}
