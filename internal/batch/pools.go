package batch

// IntroAnimations are applied to the first image of each scene in turn.
var IntroAnimations = [...]string{
	"Fade_In", "Zoom_1", "Zoom_2", "Slide_Down", "Slide_Up",
	"Slide_Left", "Slide_Right", "Rotate", "Flip", "Mini_Zoom",
}

// Transitions are applied to the first image of each scene in turn.
var Transitions = [...]string{
	"Dissolve", "Mix", "Black_Fade", "White_Flash", "Blur",
	"Slide", "Wipe_Right", "Wipe_Left", "Flip", "Glitch",
}

// IntroAnimationFor returns the intro animation for a 0-based scene index.
func IntroAnimationFor(sceneIdx int) string {
	return IntroAnimations[sceneIdx%len(IntroAnimations)]
}

// TransitionFor returns the transition for a 0-based scene index.
func TransitionFor(sceneIdx int) string {
	return Transitions[sceneIdx%len(Transitions)]
}
