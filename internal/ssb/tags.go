package ssb

// TagKind discriminates the Tag sum type. The set is closed: the render
// state machine and the rasterizer switch over it exhaustively instead of
// type-asserting a polymorphic tree.
type TagKind int

const (
	TagFontFamily TagKind = iota
	TagFontStyle
	TagFontSize
	TagFontSpace
	TagLineWidth
	TagLineStyle
	TagLineDash
	TagMode
	TagDeform
	TagPosition
	TagAlign
	TagMargin
	TagDirection
	TagIdentity
	TagAffine // translate/scale/rotate/shear/transform, discriminated by AffineOp
	TagColor
	TagAlpha
	TagLineColor
	TagLineAlpha
	TagTexture
	TagTexFill
	TagBlend
	TagBlur
	TagStencil
	TagFade
	TagAnimate
	TagKaraoke
	TagKaraokeColor
	TagKaraokeMode
)

// GeometryMode selects how a geometry is painted (mode= tag).
type GeometryMode int

const (
	ModeFill GeometryMode = iota
	ModeWire
	ModeBoxed
)

// LineJoin is the stroke join style (ls= tag).
type LineJoin int

const (
	JoinRound LineJoin = iota
	JoinBevel
	JoinMiter
)

// LineCap is the stroke cap style (ls= tag).
type LineCap int

const (
	CapRound LineCap = iota
	CapFlat
	CapSquare
)

// Direction is the text/geometry flow direction.
type Direction int

const (
	DirLTR Direction = iota
	DirRTL
	DirTTB
)

// AffineOp discriminates a TagAffine tag.
type AffineOp int

const (
	AffineTranslate AffineOp = iota
	AffineScale
	AffineRotate
	AffineRotateXY // pseudo-3D rotate around x then y (rxy=angle_x,angle_y)
	AffineRotateYX // pseudo-3D rotate around y then x (ryx=angle_y,angle_x)
	AffineShear
	AffineTransform // explicit 3x3/6-parameter matrix
)

// WrapMode is the texture-fill wrap/tiling behaviour (texfill= tag).
type WrapMode int

const (
	WrapClamp WrapMode = iota
	WrapRepeat
	WrapMirror
	WrapFlow
)

// BlendMode is the compositing operator (blend= tag and Blend package mode).
type BlendMode int

const (
	BlendOver BlendMode = iota
	BlendAdd
	BlendSub
	BlendMul
	BlendScreen
	BlendDiff
)

// StencilMode selects how a tile interacts with the event's scratch stencil.
type StencilMode int

const (
	StencilOff StencilMode = iota
	StencilSet
	StencilUnset
	StencilInside
	StencilOutside
)

// KaraokeAdvance discriminates karaoke(duration|set, ms).
type KaraokeAdvance int

const (
	KaraokeDuration KaraokeAdvance = iota
	KaraokeSet
)

// KaraokeStyle is the km= karaoke recolour style.
type KaraokeStyle int

const (
	KaraokeFill KaraokeStyle = iota
	KaraokeSolid
	KaraokeGlow
)

// Color is an sRGB colour with no alpha (alpha travels separately, per tag).
type Color struct {
	R, G, B uint8
}

// Tag is one style/state-change directive. Only the fields relevant to Kind
// are populated; all others are zero.
type Tag struct {
	Kind TagKind

	// font-family, font-style
	FontFamily                                   string
	Bold, Italic, Underline, Strikeout           bool

	// font-size, font-space, line-width
	FontSize            float64
	SpaceH, SpaceV       float64
	LineWidth            float64

	// line-style, line-dash
	LineJoin   LineJoin
	LineCap    LineCap
	DashOffset float64
	Dashes     []float64

	// mode
	Mode GeometryMode

	// deform
	DeformExprX, DeformExprY string

	// position (Unset sentinel ⇒ auto)
	PosX, PosY float64

	// align (numpad 1..9)
	Align int

	// margin
	MarginH, MarginV float64

	// direction
	Direction Direction

	// translate/scale/rotate/shear/transform (AffineOp selects which);
	// Args holds up to 6 parameters positionally (tx,ty / sx,sy / deg /
	// shx,shy / 6-element matrix row-major 2x3).
	AffineOp AffineOp
	Args     [6]float64

	// color/alpha/line-color/line-alpha (1 or 4 entries, corner order
	// TL,TR,BR,BL)
	Colors     []Color
	Alphas     []float64
	LineColors []Color
	LineAlphas []float64

	// texture, texfill
	TextureFile        string
	TexFillX, TexFillY float64
	TexWrap            WrapMode

	// blend
	Blend BlendMode

	// blur
	BlurH, BlurV float64

	// stencil
	Stencil StencilMode

	// fade
	FadeInMS, FadeOutMS float64

	// animate (Start/End Unset sentinel ⇒ spans the event; negative ⇒
	// offset from inner_duration)
	AnimStart, AnimEnd float64
	AnimExpr           string
	AnimInner          []Tag

	// karaoke
	KaraokeAdvance KaraokeAdvance
	KaraokeMS      float64

	// karaoke-color, karaoke-mode
	KaraokeColor Color
	KaraokeStyle KaraokeStyle
}
