package service

// PassMark is the lowest mark that counts as a pass. It sits on the D
// boundary so every lettered grade above F passes.
const PassMark = 50.0

// GradeLetter maps a 0..100 mark onto the letter scale shown on result
// sheets and certificates.
func GradeLetter(marks float64) string {
	switch {
	case marks >= 90:
		return "A+"
	case marks >= 80:
		return "A"
	case marks >= 70:
		return "B"
	case marks >= 60:
		return "C"
	case marks >= 50:
		return "D"
	default:
		return "F"
	}
}

func IsPass(marks float64) bool {
	return marks >= PassMark
}
