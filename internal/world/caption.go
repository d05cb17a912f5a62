package world

// Caption is the layout of a paused screen: lines of text stacked around
// the screen center, with an optional image centered above them.
type Caption struct {
	Image    Rect  // Zero when there is no image
	LineTops []int // Top edge of each line
}

// LayoutCaption positions lineCount lines of lineHeight each, and an image
// of imageW x imageH whose bottom sits gap above the first line.
// Pass a zero image size for text only.
func LayoutCaption(screen Rect, lineCount, lineHeight, imageW, imageH, gap int) Caption {
	top := screen.CenterY() - lineCount*lineHeight/2

	var img Rect
	if imageW > 0 && imageH > 0 {
		top += imageH / 2
		img = Rect{W: imageW, H: imageH}
		img.SetMidBottom(screen.CenterX(), top-gap)
	}

	tops := make([]int, lineCount)
	for i := range tops {
		tops[i] = top + i*lineHeight
	}
	return Caption{Image: img, LineTops: tops}
}
