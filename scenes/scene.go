package scenes

// SceneChanger is implemented by the game to switch the active scene
type SceneChanger interface {
	ChangeScene(scene interface{})
}
